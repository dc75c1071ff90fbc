package config

import (
	"flag"
	"os"
	"time"

	"github.com/armanazij/mygp-survey/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   survey endpoint URL (default from Config)
//	-i int      auto-refresh interval in seconds (default from Config)
//	-d string   path of the local cache database
//	-o string   directory xlsx reports are written to
//
// The function filters os.Args to only the flags it knows about, using
// flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-i", "-d", "-o"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.EndpointURL, "a", cfg.EndpointURL, "survey endpoint URL")
	refreshInterval := fs.Int("i", int(cfg.RefreshInterval.Seconds()), "auto-refresh interval (in seconds)")
	fs.StringVar(&cfg.CacheDSN, "d", cfg.CacheDSN, "local cache database path")
	fs.StringVar(&cfg.ExportDir, "o", cfg.ExportDir, "export directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RefreshInterval = time.Duration(*refreshInterval) * time.Second
}

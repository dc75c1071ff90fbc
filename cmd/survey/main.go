package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/armanazij/mygp-survey/internal/cli"
	"github.com/armanazij/mygp-survey/internal/config"
	"github.com/armanazij/mygp-survey/internal/logging"
	"golang.org/x/term"
)

func main() {
	cfg := config.LoadConfig()

	// Keep the prompt clean in interactive sessions; piped input gets the
	// full log stream on stderr.
	level := slog.LevelInfo
	if term.IsTerminal(int(os.Stdin.Fd())) {
		level = slog.LevelWarn
	}
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to initialize", "error", err)
		os.Exit(1)
	}
	defer app.Close()

	app.Run(ctx)
}

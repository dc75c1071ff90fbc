// Package cli is the terminal front end of the survey: an interactive loop
// over the submission, refresh, statistics and export flows.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync"

	"github.com/armanazij/mygp-survey/internal/cache"
	"github.com/armanazij/mygp-survey/internal/config"
	"github.com/armanazij/mygp-survey/internal/dedup"
	"github.com/armanazij/mygp-survey/internal/export"
	"github.com/armanazij/mygp-survey/internal/logging"
	"github.com/armanazij/mygp-survey/internal/phone"
	"github.com/armanazij/mygp-survey/internal/remote"
	"github.com/armanazij/mygp-survey/internal/services"
	"github.com/armanazij/mygp-survey/internal/stats"
	"github.com/armanazij/mygp-survey/internal/store"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	store   *store.EntryStore
	service *services.SurveyService
	export  *export.Writer
	cats    stats.Categories
	reader  *bufio.Reader
	out     io.Writer

	// snap is the aggregate snapshot recomputed on every store change.
	mu   sync.Mutex
	snap stats.Snapshot
}

// NewApp wires the whole client together: cache database, store seeded from
// the cache, remote client, submission service and export writer.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	db, err := cache.Open(ctx, cfg.CacheDSN)
	if err != nil {
		return nil, err
	}

	localCache := cache.New(db, cfg.CacheKey)
	st := store.New(localCache, log)

	norm := phone.NewNormalizer(cfg.PhoneCountryCode, cfg.PhoneTrunkPrefix)
	client := remote.New(cfg.EndpointURL, cfg.RequestTimeout, log)
	svc := services.NewSurveyService(client, st, dedup.NewIndex(norm), log)
	cats := stats.CategoriesFromConfig(cfg)

	a := &App{
		config:  cfg,
		log:     log,
		db:      db,
		store:   st,
		service: svc,
		export:  export.NewWriter(cfg.ExportDir, cats),
		cats:    cats,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}

	st.OnChange(a.recompute)

	// The cached collection seeds the session; a background refresh will
	// reconcile it against the endpoint shortly after startup.
	seed, err := localCache.Load(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load cached entries", "error", err)
		seed = nil
	}
	st.Seed(seed)

	return a, nil
}

func (a *App) Close() error {
	return a.db.Close()
}

// Run starts the background refresh loop and hands control to the REPL.
// A first silent refresh runs immediately, like the page load did.
func (a *App) Run(ctx context.Context) {
	go func() {
		if _, err := a.service.Refresh(ctx); err != nil {
			a.log.Debug(ctx, "initial refresh failed", "error", err)
		}
	}()

	task := a.service.StartAutoRefresh(ctx, a.config.RefreshInterval)
	defer task.Stop()

	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

func (a *App) recompute() {
	snap := stats.Aggregate(a.store.Current(), a.cats)
	a.mu.Lock()
	a.snap = snap
	a.mu.Unlock()
}

func (a *App) snapshot() stats.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snap
}

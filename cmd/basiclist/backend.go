package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hy4ri/basiclist-tui/internal/api"
	"github.com/hy4ri/basiclist-tui/internal/config"
	"github.com/hy4ri/basiclist-tui/internal/store"
)

// openedBackend is a store backend plus what the caller must do around it.
type openedBackend struct {
	backend store.Backend

	// watchPath is the file to watch for outside edits, if any.
	watchPath string
	close     func()
}

// openBackend builds the backend cfg asks for. Fresh memory, file and mysql
// stores are seeded with demo rows.
func openBackend(ctx context.Context, cfg *config.Config) (*openedBackend, error) {
	seed := store.DemoTasks(cfg.Store.Seed, cfg.UI.Owners, time.Now())
	out := &openedBackend{close: func() {}}

	switch cfg.Store.Backend {
	case config.BackendMemory:
		out.backend = store.NewMemory(seed)

	case config.BackendFile:
		path, err := cfg.TaskFile()
		if err != nil {
			return nil, err
		}
		f := store.NewFile(path)
		if err := f.SeedIfMissing(seed); err != nil {
			return nil, fmt.Errorf("failed to seed task file: %w", err)
		}
		out.backend = f
		out.watchPath = path

	case config.BackendHTTP:
		if cfg.Store.BaseURL == "" {
			return nil, fmt.Errorf("store.base_url is required for the http backend")
		}
		token, err := cfg.ResolveToken()
		if err != nil {
			return nil, fmt.Errorf("failed to read API token: %w", err)
		}
		out.backend = store.NewRemote(api.NewClient(cfg.Store.BaseURL, token))

	case config.BackendMySQL:
		db, err := store.OpenMySQL(ctx, cfg.Store.DSN)
		if err != nil {
			return nil, err
		}
		if err := db.Seed(ctx, seed); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to seed database: %w", err)
		}
		out.backend = db
		out.close = func() { db.Close() }

	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}

	return out, nil
}

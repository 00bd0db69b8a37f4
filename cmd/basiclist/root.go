package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/hy4ri/basiclist-tui/internal/config"
	"github.com/hy4ri/basiclist-tui/internal/store"
	"github.com/hy4ri/basiclist-tui/internal/tui"
	"github.com/hy4ri/basiclist-tui/internal/watcher"
)

// version is set at build time via ldflags.
var version = "dev"

// debugEnv turns on logging to debug.log when set.
const debugEnv = "BASICLIST_DEBUG"

// Global flags.
var (
	flagBackend string
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "basiclist",
	Short: "A terminal task list with add, edit and delete",
	Long: `basiclist shows a paginated task list in the terminal. Tasks can be
added and edited through a modal form and deleted after confirmation.

Tasks live in memory by default; the file, http and mysql backends persist
them. Press ? inside the app for keybindings.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runTUI,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to config file (default ~/.config/basiclist/config.yaml)")
	rootCmd.Flags().StringVar(&flagBackend, "backend", "", "store backend: memory, file, http or mysql (overrides config)")
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFile(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if flagBackend != "" {
		cfg.Store.Backend = flagBackend
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func runTUI(_ *cobra.Command, _ []string) error {
	if os.Getenv(debugEnv) != "" {
		dir, err := config.ConfigDir()
		if err != nil {
			return err
		}
		f, err := tea.LogToFile(filepath.Join(dir, "debug.log"), "basiclist")
		if err != nil {
			return fmt.Errorf("failed to open debug log: %w", err)
		}
		defer f.Close()
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	b, err := openBackend(ctx, cfg)
	if err != nil {
		return err
	}
	defer b.close()

	st := store.New(b.backend, store.WithLogger(log.Default()))
	app := tui.NewApp(ctx, cfg, st)
	defer app.Close()

	if b.watchPath != "" {
		go startWatcher(ctx, b.watchPath, st)
	}

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// startWatcher refreshes the store whenever the task file changes on disk.
func startWatcher(ctx context.Context, path string, st *store.Store) {
	w, err := watcher.NewForFile(path, func() {
		if err := st.Refresh(ctx); err != nil {
			log.Printf("Refresh after file change failed: %v", err)
		}
	})
	if err != nil {
		log.Printf("File watcher disabled: %v", err)
		return
	}
	defer w.Close()
	w.Run(ctx, func(err error) {
		log.Printf("File watcher error: %v", err)
	})
}

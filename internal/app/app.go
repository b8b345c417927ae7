// Package app wires configuration, logging, storage and rendering into a LibraryManager.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"library-catalog/internal/config"
	"library-catalog/internal/logger"
	"library-catalog/library"
)

// NewLogger builds the process logger from cfg.
func NewLogger(cfg *config.Config, w io.Writer) *slog.Logger {
	return logger.New(logger.Config{
		Writer:      w,
		Format:      cfg.Logger.Format,
		Environment: cfg.App.Environment,
		Level:       logger.ParseLevel(cfg.Logger.Level),
	})
}

// OpenStore opens the backend selected by cfg.
func OpenStore(cfg config.StoreConfig) (library.Store, error) {
	switch cfg.Backend {
	case config.StoreSQLite:
		db, err := library.NewDatabase(cfg.DBPath, cfg.Key)
		if err != nil {
			return nil, err
		}
		return db, nil
	case config.StoreRedis:
		rs, err := library.NewRedisStore(cfg.RedisAddr, cfg.Key)
		if err != nil {
			return nil, err
		}
		return rs, nil
	case config.StoreMemory:
		return library.NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Backend)
	}
}

// NewRenderer returns a TextRenderer on out, colored when out is a terminal.
func NewRenderer(out io.Writer) *library.TextRenderer {
	color := false
	if f, ok := out.(*os.File); ok {
		color = term.IsTerminal(int(f.Fd()))
	}
	return library.NewTextRenderer(out, color)
}

// Open returns a manager over the configured store. view may be nil.
func Open(cfg *config.Config, view library.Renderer, log *slog.Logger) (*library.LibraryManager, error) {
	store, err := OpenStore(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", cfg.Store.Backend, err)
	}
	mgr, err := library.NewLibraryManager(store, view, log.With("store", cfg.Store.Backend))
	if err != nil {
		store.Close()
		return nil, err
	}
	return mgr, nil
}

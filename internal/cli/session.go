package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/logging"
	"github.com/idilsaglam/todolist/internal/store"
	"github.com/idilsaglam/todolist/internal/ui"
)

// session is everything a command needs: resolved config, the storage
// backend bound to the list's key, and a logger.
type session struct {
	cfg       *config.Config
	kv        store.KV
	adapter   *store.Adapter
	log       *log.Logger
	logCloser io.Closer
}

// openSession resolves config and opens storage. Logs go to the
// configured file, or to logOut when none is set.
func openSession(opts *RootOptions, logOut io.Writer) (*session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	opts.applyFlags(cfg)
	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	ui.SetTheme(cfg.Theme)

	logger, closer, err := logging.Open(cfg.LogFile, logOut, logging.Options{Level: cfg.LogLevel})
	if err != nil {
		return nil, err
	}

	kv, err := store.Open(cfg.Backend, cfg.DataPath)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("open %s store: %w", cfg.Backend, err)
	}
	logger.Debug("session", "backend", cfg.Backend, "data", cfg.DataPath, "key", cfg.Key, "config", cfg.Source)

	return &session{
		cfg:       cfg,
		kv:        kv,
		adapter:   store.NewAdapter(kv, cfg.Key, logger.With("backend", cfg.Backend)),
		log:       logger,
		logCloser: closer,
	}, nil
}

func (s *session) Close() error {
	return errors.Join(s.kv.Close(), s.logCloser.Close())
}

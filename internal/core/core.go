package core

import (
	"fmt"
	"path/filepath"

	"github.com/agubarev/easypass/pkg/util"
	"github.com/agubarev/easypass/pkg/vault"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Core is an aggregate of everything a presentation layer needs
type Core struct {
	config Config
	store  *vault.Store
	logger *zap.Logger
}

// New builds the logger and opens the password store
func New(cfg Config) (*Core, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Core{config: cfg}

	//---------------------------------------------------------------------------
	// initializing logger
	//---------------------------------------------------------------------------
	logger, err := util.DefaultLogger(cfg.Debug, cfg.LogDir)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize logger")
	}

	if err = c.SetLogger(logger); err != nil {
		return nil, err
	}

	l := c.Logger()

	//---------------------------------------------------------------------------
	// opening password store
	//---------------------------------------------------------------------------
	if err = util.CreateDirectoryIfNotExists(filepath.Dir(cfg.StorePath), 0700); err != nil {
		return nil, err
	}

	l.Debug("opening password store", zap.String("path", cfg.StorePath), zap.String("section", cfg.Section))

	s, err := vault.Open(cfg.StorePath, vault.WithSection(cfg.Section), vault.WithLogger(logger))
	if err != nil {
		return nil, errors.Wrap(err, "failed to open password store")
	}

	if err = c.SetStore(s); err != nil {
		return nil, err
	}

	return c, nil
}

// Config returns the configuration the core has been built with
func (c *Core) Config() Config {
	return c.config
}

// Store returns the password store
func (c *Core) Store() (*vault.Store, error) {
	if c == nil {
		return nil, ErrNilCore
	}

	if c.store == nil {
		return nil, ErrNilStore
	}

	return c.store, nil
}

// SetStore assigns a password store
func (c *Core) SetStore(s *vault.Store) error {
	if s == nil {
		return ErrNilStore
	}

	c.store = s

	return nil
}

// SetLogger setting a primary logger for the core
func (c *Core) SetLogger(logger *zap.Logger) error {
	// if logger is set, then giving it a name
	// to know the log context
	if logger != nil {
		logger = logger.Named("[easypass]")
	}

	c.logger = logger

	return nil
}

// Logger returns primary logger if is set, otherwise initializing and returning
// a new default emergency logger
// NOTE: will panic if it finally fails to obtain a logger
func (c *Core) Logger() *zap.Logger {
	if c.logger == nil {
		l, err := zap.NewDevelopment()
		if err != nil {
			// having a working logger is crucial, thus must panic() if initialization fails
			panic(fmt.Errorf("failed to initialize core logger: %s", err))
		}

		c.logger = l
	}

	return c.logger
}

// Close flushes buffered log entries
func (c *Core) Close() error {
	if c == nil || c.logger == nil {
		return nil
	}

	// syncing stdout/stderr fails on some platforms, nothing to do about it
	_ = c.logger.Sync()

	return nil
}

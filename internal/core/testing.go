package core

import (
	"path/filepath"

	"github.com/agubarev/easypass/pkg/vault"
	"go.uber.org/zap"
)

// NewCoreForTesting returns a core backed by a store file inside dir
// and a no-op logger
func NewCoreForTesting(dir string) (*Core, error) {
	cfg := Config{
		StorePath: filepath.Join(dir, "config.ini"),
		Section:   vault.DefaultSection,
	}

	s, err := vault.Open(cfg.StorePath, vault.WithSection(cfg.Section))
	if err != nil {
		return nil, err
	}

	c := &Core{config: cfg}

	if err = c.SetLogger(zap.NewNop()); err != nil {
		return nil, err
	}

	if err = c.SetStore(s); err != nil {
		return nil, err
	}

	return c, nil
}

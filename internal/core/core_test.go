package core_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agubarev/easypass/internal/core"
	"github.com/agubarev/easypass/pkg/vault"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	a := assert.New(t)

	cfg, err := core.LoadConfig(viper.New(), "")
	a.NoError(err)

	home, err := homedir.Dir()
	a.NoError(err)

	a.Equal(filepath.Join(home, ".easypass", "config.ini"), cfg.StorePath)
	a.Equal(vault.DefaultSection, cfg.Section)
	a.Equal("", cfg.LogDir)
	a.False(cfg.Debug)

	_, err = core.LoadConfig(nil, "")
	a.Equal(core.ErrNilViper, err)
}

func TestLoadConfigEnvironment(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "passwords.ini")

	a.NoError(os.Setenv("EASYPASS_STORE_PATH", path))
	a.NoError(os.Setenv("EASYPASS_STORE_SECTION", "Vault"))
	defer os.Unsetenv("EASYPASS_STORE_PATH")
	defer os.Unsetenv("EASYPASS_STORE_SECTION")

	cfg, err := core.LoadConfig(viper.New(), "")
	a.NoError(err)
	a.Equal(path, cfg.StorePath)
	a.Equal("Vault", cfg.Section)
}

func TestLoadConfigFile(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	configFile := filepath.Join(dir, "settings.yaml")
	storePath := filepath.Join(dir, "store.ini")

	a.NoError(os.WriteFile(configFile, []byte("store:\n  path: "+storePath+"\n  section: Mine\nlog:\n  debug: true\n"), 0600))

	cfg, err := core.LoadConfig(viper.New(), configFile)
	a.NoError(err)
	a.Equal(storePath, cfg.StorePath)
	a.Equal("Mine", cfg.Section)
	a.True(cfg.Debug)

	_, err = core.LoadConfig(viper.New(), filepath.Join(dir, "missing.yaml"))
	a.Error(err)
}

func TestConfigValidate(t *testing.T) {
	a := assert.New(t)

	a.Equal(core.ErrEmptyStore, core.Config{Section: "x"}.Validate())
	a.Equal(core.ErrEmptySection, core.Config{StorePath: "x"}.Validate())
	a.NoError(core.Config{StorePath: "x", Section: "y"}.Validate())
}

func TestNew(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	cfg := core.Config{
		StorePath: filepath.Join(dir, "nested", "config.ini"),
		Section:   vault.DefaultSection,
		LogDir:    filepath.Join(dir, "logs"),
	}

	c, err := core.New(cfg)
	a.NoError(err)
	a.NotNil(c)
	a.Equal(cfg, c.Config())
	a.NotNil(c.Logger())

	s, err := c.Store()
	a.NoError(err)
	a.Equal(cfg.StorePath, s.Path())

	// store directory has been created, so saving works
	a.NoError(s.Add("github", "abc123"))

	m, err := vault.ReadFile(cfg.StorePath, vault.DefaultSection)
	a.NoError(err)
	a.Equal(map[string]string{"github": "abc123"}, m)

	a.NoError(c.Close())

	_, err = core.New(core.Config{})
	a.Equal(core.ErrEmptyStore, err)
}

func TestNilCore(t *testing.T) {
	a := assert.New(t)

	var c *core.Core

	_, err := c.Store()
	a.Equal(core.ErrNilCore, err)
	a.NoError(c.Close())
}

func TestNewCoreForTesting(t *testing.T) {
	a := assert.New(t)

	c, err := core.NewCoreForTesting(t.TempDir())
	a.NoError(err)

	s, err := c.Store()
	a.NoError(err)
	a.Equal(0, s.Len())

	a.Equal(core.ErrNilStore, c.SetStore(nil))
}

package core

import (
	"path/filepath"
	"strings"

	"github.com/agubarev/easypass/pkg/vault"
	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// configuration keys
const (
	KeyStorePath    = "store.path"
	KeyStoreSection = "store.section"
	KeyLogDir       = "log.dir"
	KeyLogDebug     = "log.debug"
)

// EnvPrefix is the prefix of environment variables, i.e. EASYPASS_STORE_PATH
const EnvPrefix = "EASYPASS"

// DefaultStorePath is where the passwords live unless configured otherwise
var DefaultStorePath = filepath.Join("~", ".easypass", "config.ini")

// Config holds runtime options for building the core
type Config struct {
	StorePath string
	Section   string
	LogDir    string
	Debug     bool
}

// Validate validates the configuration
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.StorePath) == "" {
		return ErrEmptyStore
	}

	if strings.TrimSpace(cfg.Section) == "" {
		return ErrEmptySection
	}

	return nil
}

// SetDefaults registers defaults and environment bindings on a given viper
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStorePath, DefaultStorePath)
	v.SetDefault(KeyStoreSection, vault.DefaultSection)
	v.SetDefault(KeyLogDir, "")
	v.SetDefault(KeyLogDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// LoadConfig reads the configuration from viper, reading configFile first
// if it's given; paths starting with ~ are expanded
func LoadConfig(v *viper.Viper, configFile string) (cfg Config, err error) {
	if v == nil {
		return cfg, ErrNilViper
	}

	SetDefaults(v)

	if configFile != "" {
		configFile, err = homedir.Expand(configFile)
		if err != nil {
			return cfg, errors.Wrap(err, "failed to expand config file path")
		}

		v.SetConfigFile(configFile)

		if err = v.ReadInConfig(); err != nil {
			return cfg, errors.Wrapf(err, "failed to read config file %s", configFile)
		}
	}

	cfg = Config{
		StorePath: strings.TrimSpace(v.GetString(KeyStorePath)),
		Section:   strings.TrimSpace(v.GetString(KeyStoreSection)),
		LogDir:    strings.TrimSpace(v.GetString(KeyLogDir)),
		Debug:     v.GetBool(KeyLogDebug),
	}

	if cfg.StorePath, err = homedir.Expand(cfg.StorePath); err != nil {
		return cfg, errors.Wrap(err, "failed to expand store path")
	}

	if cfg.LogDir, err = homedir.Expand(cfg.LogDir); err != nil {
		return cfg, errors.Wrap(err, "failed to expand log directory")
	}

	return cfg, cfg.Validate()
}

// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"github.com/agubarev/easypass/internal/core"
	"github.com/agubarev/easypass/pkg/vault"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// commands annotated with this key run without opening the store
const annotationNoStore = "easypass/no-store"

// app carries state shared by all subcommands of a single invocation
type app struct {
	v          *viper.Viper
	configFile string
	core       *core.Core
}

// store returns the opened password store
func (a *app) store() (*vault.Store, error) {
	if a.core == nil {
		return nil, core.ErrNilCore
	}

	return a.core.Store()
}

func newApp() *app {
	return &app{v: viper.New()}
}

// run executes the command tree and releases the core afterwards;
// cobra skips post-run hooks when a command fails
func (a *app) run(root *cobra.Command) error {
	err := root.Execute()

	if cerr := a.close(); err == nil {
		err = cerr
	}

	return err
}

// close flushes the logger and drops the core
func (a *app) close() error {
	if a.core == nil {
		return nil
	}

	err := a.core.Close()
	a.core = nil

	return err
}

// Execute runs the root command against the process stdio
func Execute() error {
	a := newApp()
	return a.run(newRootCmd(a))
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "easypass",
		Short: "Keep account passwords in a local INI file.",
		Long: `Easypass keeps account/password pairs in a single section of a local INI file
and rewrites the whole file after every change.

Passwords are stored in PLAINTEXT, the file is only protected by its
permissions (0600). Do not keep it on shared or synced storage.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := cmd.Annotations[annotationNoStore]; ok {
				return nil
			}

			cfg, err := core.LoadConfig(a.v, a.configFile)
			if err != nil {
				return err
			}

			a.core, err = core.New(cfg)
			if err != nil {
				return err
			}

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configFile, "config", "", "settings file (yaml, toml or json)")
	flags.String("store", "", "password file (default ~/.easypass/config.ini)")
	flags.String("section", "", "INI section holding the passwords (default \"Passwords\")")
	flags.String("log-dir", "", "directory for log files, logs go to stdout/stderr if empty")
	flags.Bool("debug", false, "verbose logging")

	// binding flags to configuration keys, flags win over
	// the settings file and the environment
	for key, flag := range map[string]string{
		core.KeyStorePath:    "store",
		core.KeyStoreSection: "section",
		core.KeyLogDir:       "log-dir",
		core.KeyLogDebug:     "debug",
	} {
		if err := a.v.BindPFlag(key, flags.Lookup(flag)); err != nil {
			panic(errors.Wrapf(err, "failed to bind flag --%s", flag))
		}
	}

	rootCmd.AddCommand(
		newListCmd(a),
		newGetCmd(a),
		newAddCmd(a),
		newEditCmd(a),
		newDeleteCmd(a),
		newStrengthCmd(a),
		newGenerateCmd(),
		newImportCmd(a),
	)

	return rootCmd
}

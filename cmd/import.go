// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/agubarev/easypass/pkg/util"
	"github.com/agubarev/easypass/pkg/vault"
	"github.com/spf13/cobra"
)

func newImportCmd(a *app) *cobra.Command {
	var (
		section   string
		overwrite bool
	)

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Merge passwords from another INI file.",
		Long: `Merge passwords from another INI file in a single save.

Accounts that already exist are kept unless --overwrite is given.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			if section == "" {
				section = s.Section()
			}

			m, err := vault.ReadFile(args[0], section)
			if err != nil {
				return err
			}

			changelog, err := s.Import(m, overwrite)
			if err != nil {
				return err
			}

			for _, c := range changelog {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", c.Type, util.ChangedKey(c))
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%d account(s) imported\n", len(changelog))

			return nil
		},
	}

	cmd.Flags().StringVar(&section, "from-section", "", "section to read (default: the store's section)")
	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "replace passwords of existing accounts")

	return cmd
}

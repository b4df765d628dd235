// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/agubarev/easypass/pkg/vault"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newDeleteCmd(a *app) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <account>",
		Aliases: []string{"rm"},
		Short:   "Delete an account.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			account := args[0]

			if !s.Has(account) {
				return errors.Wrapf(vault.ErrAccountNotFound, "%q", account)
			}

			if !yes {
				ok, err := confirm(cmd, fmt.Sprintf("Delete the password for %s?", account))
				if err != nil {
					return err
				}

				if !ok {
					return ErrCancelled
				}
			}

			if err = s.Delete(account); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "password for %s deleted\n", account)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "don't ask for confirmation")

	return cmd
}

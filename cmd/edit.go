// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newEditCmd(a *app) *cobra.Command {
	var (
		rename string
		strict bool
	)

	cmd := &cobra.Command{
		Use:   "edit <account> [password]",
		Short: "Change the password of an account, optionally renaming it.",
		Long: `Change the password of an existing account.

With --rename the account is moved under a new name; the current password
is kept unless a new one is given. Renaming onto an existing account fails.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.store()
			if err != nil {
				return err
			}

			account := args[0]

			// failing early, before asking for a password
			current, err := s.Get(account)
			if err != nil {
				return err
			}

			var p string

			switch {
			case len(args) == 2:
				p = args[1]
			case rename != "":
				p = current
			default:
				if p, err = readPassword(cmd, fmt.Sprintf("New password for %s: ", account)); err != nil {
					return err
				}
			}

			if err = checkStrength(strict, account, p); err != nil {
				return err
			}

			if rename == "" {
				if err = s.Edit(account, p); err != nil {
					return err
				}

				fmt.Fprintf(cmd.ErrOrStderr(), "password for %s updated\n", account)

				return nil
			}

			if err = s.Rename(account, rename, p); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "%s renamed to %s\n", account, rename)

			return nil
		},
	}

	cmd.Flags().StringVar(&rename, "rename", "", "new account name")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject weak passwords")

	return cmd
}

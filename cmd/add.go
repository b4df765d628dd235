// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/agubarev/easypass/pkg/password"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// checkStrength rejects unsafe passwords when strict mode is on
func checkStrength(strict bool, account, p string) error {
	if !strict {
		return nil
	}

	if err := password.EvaluatePasswordStrength([]byte(p), []string{account}); err != nil {
		return errors.Wrapf(err, "password for %q rejected", account)
	}

	return nil
}

func newAddCmd(a *app) *cobra.Command {
	var (
		generate int
		symbols  bool
		strict   bool
	)

	cmd := &cobra.Command{
		Use:   "add <account> [password]",
		Short: "Add an account or overwrite its password.",
		Long: `Add an account or overwrite its password.

The password is prompted for when omitted, piped input is read as a single line.
With --generate a random password of the given length is stored and printed.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := a.store()
			if err != nil {
				return err
			}

			account := args[0]

			var p string

			switch {
			case generate > 0 && len(args) == 2:
				return errors.New("--generate and an explicit password are mutually exclusive")
			case generate > 0:
				charset := password.Alphanumeric
				if symbols {
					charset = password.WithSymbols
				}

				if p, err = password.Generate(generate, charset); err != nil {
					return err
				}
			case len(args) == 2:
				p = args[1]
			default:
				if p, err = readPassword(cmd, fmt.Sprintf("Password for %s: ", account)); err != nil {
					return err
				}
			}

			if err = checkStrength(strict, account, p); err != nil {
				return err
			}

			existed := s.Has(account)

			if err = s.Add(account, p); err != nil {
				return err
			}

			if generate > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}

			if existed {
				fmt.Fprintf(cmd.ErrOrStderr(), "password for %s updated\n", account)
			} else {
				fmt.Fprintf(cmd.ErrOrStderr(), "password for %s added\n", account)
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&generate, "generate", "g", 0, "generate a random password of this length")
	cmd.Flags().BoolVar(&symbols, "symbols", false, "include symbols in a generated password")
	cmd.Flags().BoolVar(&strict, "strict", false, "reject weak passwords")

	return cmd
}

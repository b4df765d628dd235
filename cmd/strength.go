// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/agubarev/easypass/pkg/password"
	"github.com/spf13/cobra"
)

func newStrengthCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "strength [account]",
		Short: "Report how strong stored passwords are.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			accounts := s.Accounts()
			if len(args) == 1 {
				accounts = args
			}

			for _, account := range accounts {
				p, err := s.Get(account)
				if err != nil {
					return err
				}

				st := password.Evaluate(p, []string{account})

				fmt.Fprintf(
					cmd.OutOrStdout(),
					"%s: %s (score %d/4, crack time %s)\n",
					account,
					st.Label(),
					st.Score,
					st.CrackTime,
				)
			}

			return nil
		},
	}
}

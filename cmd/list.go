// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/agubarev/easypass/pkg/util"
	"github.com/spf13/cobra"
)

// accountList is the JSON output of the list command
type accountList struct {
	Accounts []string `json:"accounts"`
	Count    int      `json:"count"`
}

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stored account names.",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.store()
			if err != nil {
				return err
			}

			accounts := s.Accounts()

			if asJSON {
				buf, err := util.PrettyJSON(accountList{Accounts: accounts, Count: len(accounts)})
				if err != nil {
					return err
				}

				_, err = cmd.OutOrStdout().Write(buf)

				return err
			}

			for _, account := range accounts {
				fmt.Fprintln(cmd.OutOrStdout(), account)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

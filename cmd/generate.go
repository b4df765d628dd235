// Copyright © 2019 Andrei Gubarev <agubarev@protonmail.com>

package cmd

import (
	"fmt"

	"github.com/agubarev/easypass/pkg/password"
	"github.com/spf13/cobra"
)

func newGenerateCmd() *cobra.Command {
	var (
		length  int
		symbols bool
	)

	cmd := &cobra.Command{
		Use:         "generate",
		Short:       "Print a random password without storing it.",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoStore: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			charset := password.Alphanumeric
			if symbols {
				charset = password.WithSymbols
			}

			p, err := password.Generate(length, charset)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), p)

			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", password.DefaultLength, "password length")
	cmd.Flags().BoolVar(&symbols, "symbols", false, "include symbols")

	return cmd
}

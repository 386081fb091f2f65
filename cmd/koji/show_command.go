package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/koji/internal/format"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := format.ParseFormat(output)
			if err != nil {
				return err
			}
			log, closeLog, err := ctx.openLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			r, err := ctx.newStore(log.Named("store")).Get(args[0])
			if err != nil {
				return fmt.Errorf("show: %w", err)
			}
			return format.WriteRecipe(cmd.OutOrStdout(), f, r)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(format.Table), "Output format: table, json, yaml or toml")
	return cmd
}

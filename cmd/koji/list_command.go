package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/koji/internal/format"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var query string
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recipes",
		Long:  "List recipes, optionally filtered by a case-insensitive query over title, description and tags.",
		Args:  cobra.NoArgs,
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

			store := ctx.newStore(log.Named("store"))
			recipes := store.List()
			if strings.TrimSpace(query) != "" {
				recipes = store.Search(query)
			}
			if f == format.Table && len(recipes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No recipes match.")
				return nil
			}
			return format.WriteList(cmd.OutOrStdout(), f, recipes)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Only show recipes matching this text")
	cmd.Flags().StringVarP(&output, "output", "o", string(format.Table), "Output format: table, json, yaml or toml")
	return cmd
}

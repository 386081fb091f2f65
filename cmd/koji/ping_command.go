package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/koji/internal/bridge"
	"github.com/hammamikhairi/koji/internal/domain"
)

func newPingCommand(ctx *commandContext) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "ping",
		Short: "Check the host bridge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, closeLog, err := ctx.openLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer closeLog()

			host := bridge.NewLocal(log.Named("bridge"))
			reply, err := host.Ping(cmd.Context())
			if err != nil {
				return fmt.Errorf("ping: %w", err)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, reply)

			if !all {
				return nil
			}
			items, err := host.GetAll(cmd.Context())
			if errors.Is(err, domain.ErrNotImplemented) {
				fmt.Fprintf(out, "getAll: %v\n", err)
				return nil
			}
			if err != nil {
				return fmt.Errorf("getAll: %w", err)
			}
			fmt.Fprintf(out, "getAll: %d items\n", len(items))
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also request every record from the host")
	return cmd
}

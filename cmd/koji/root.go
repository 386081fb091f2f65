package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hammamikhairi/koji/internal/bridge"
	"github.com/hammamikhairi/koji/internal/command"
	"github.com/hammamikhairi/koji/internal/display"
	"github.com/hammamikhairi/koji/internal/editor"
	"github.com/hammamikhairi/koji/internal/shell"
)

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	ctx := newCommandContext(flags)

	rootCmd := &cobra.Command{
		Use:           "koji",
		Short:         "Terminal recipe manager",
		Long:          "Koji keeps a list of recipes you can browse, search, create, edit and delete from an interactive shell.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(cmd, ctx)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&flags.config, "config", "c", "", "Configuration file path")
	pf.StringVar(&flags.logFile, "log-file", "", `Log file (use "stderr" to log to the console)`)
	pf.BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")
	pf.BoolVar(&flags.quiet, "quiet", false, "Disable all logging")
	rootCmd.Flags().BoolVar(&flags.plain, "plain", false, "Print plain lines instead of the full-screen prompt")

	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newComposeCommand(ctx))
	rootCmd.AddCommand(newPingCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}

func readyMessage() string {
	return "ready at " + time.Now().Format("15:04")
}

func runShell(cmd *cobra.Command, cc *commandContext) error {
	cfg, err := cc.ensureConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := cc.openLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	store := cc.newStore(log.Named("store"))
	ed := editor.New(store, log.Named("editor"))
	host := bridge.NewLocal(log.Named("bridge"))
	parser := command.NewKeywordParser(log.Named("command"))

	deps := shell.Deps{
		Store:  store,
		Editor: ed,
		Bridge: host,
		Parser: parser,
		Log:    log.Named("shell"),
	}
	opts := []shell.Option{shell.WithStartView(cfg.StartView())}

	if cc.plainMode(cmd.OutOrStdout()) {
		out := shell.NewPlainOutput(cmd.OutOrStdout())
		in := shell.ReadLines(ctx, cmd.InOrStdin())
		deps.Out = out
		deps.Confirm = shell.NewLineConfirmer(in, out)
		app := shell.New(deps, opts...)
		host.Publish(readyMessage())
		app.Run(ctx, in)
		return nil
	}

	ui := display.NewUI(display.WithPrompt(cfg.UI.Prompt))
	deps.Out = ui
	deps.Confirm = shell.NewLineConfirmer(ui.InputChan(), ui)
	app := shell.New(deps, opts...)
	ui.Watch(app)

	fmt.Fprintln(cmd.OutOrStdout(), display.RenderBanner())
	fmt.Fprintln(cmd.OutOrStdout(), display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Fprintln(cmd.OutOrStdout())

	// Shell logic runs beside the Bubble Tea loop, which owns the terminal.
	go func() {
		ui.WaitReady()
		host.Publish(readyMessage())
		app.Run(ctx, ui.InputChan())
		ui.Quit()
	}()

	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

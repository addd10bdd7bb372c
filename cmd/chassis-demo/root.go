package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dshills/chassis/app"
)

// newDemoApp builds the runtime with the demo plugins registered.
// Registering net pulls chain in through its dependency edge.
func newDemoApp() *app.App {
	a := app.New("chassis-demo")
	a.Register(netSpec(a))
	return a
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chassis-demo",
		Short:         "Demo node built on the chassis plugin runtime",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newRunCmd(), newConfigCmd())
	return root
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run [options]",
		Short: "Run the node until interrupted",
		// The runtime's own option set handles everything after "run",
		// including --help; cobra must not eat the flags.
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newDemoApp()

			if err := a.ParseConfig(args); err != nil {
				if errors.Is(err, pflag.ErrHelp) {
					a.Options().FlagSet().PrintDefaults()
					return nil
				}
				return err
			}
			if err := a.Initialize("net"); err != nil {
				return err
			}
			if err := a.WatchConfig(); err != nil {
				log := a.Logger()
				log.Warn().Err(err).Msg("config watch unavailable")
			}
			if err := a.Startup(); err != nil {
				return err
			}
			return a.Exec()
		},
	}
}

func newConfigCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	cfg.AddCommand(&cobra.Command{
		Use:   "init",
		Short: "Write the default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newDemoApp()
			path := a.ConfigFile()
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			if err := a.Options().WriteDefaultFile(path); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), path)
			return nil
		},
	})

	cfg.AddCommand(&cobra.Command{
		Use:   "print",
		Short: "Print the default config to stdout",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := newDemoApp()
			return a.Options().WriteDefault(cmd.OutOrStdout())
		},
	})

	return cfg
}

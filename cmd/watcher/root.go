package main

import (
	"watcher/internal/di"
	"watcher/internal/infrastructure/env"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var headless bool

	root := &cobra.Command{
		Use:           "watcher",
		Short:         "Agentic content moderator for web pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&headless, "headless", true, "run the browser without a window")

	load := func(cmd *cobra.Command) di.Config {
		cfg := di.ConfigFromEnv(env.NewEnvService())
		if cmd.Flags().Changed("headless") {
			cfg.BrowserHeadless = headless
		}
		return cfg
	}

	root.AddCommand(newServeCmd(load))
	root.AddCommand(newModerateCmd(load))
	return root
}

type configLoader func(cmd *cobra.Command) di.Config

package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"watcher/internal/di"
	"watcher/internal/infrastructure/userinteraction"

	"github.com/spf13/cobra"
)

type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return "moderation failed"
}

func newModerateCmd(load configLoader) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "moderate <url>",
		Short: "Moderate a single URL and print the report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load(cmd)
			cfg.Observer = userinteraction.NewConsoleObserver(cmd.OutOrStdout())

			container, err := di.NewContainer(cfg)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			if timeout <= 0 {
				timeout = cfg.RunTimeout
			}
			if timeout <= 0 {
				timeout = di.DefaultRunTimeout
			}
			ctx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			outcome := container.Moderator.Moderate(ctx, strings.TrimSpace(args[0]))
			userinteraction.PrintOutcome(cmd.OutOrStdout(), outcome)
			if outcome.Failed() {
				return &exitError{code: 1}
			}
			return nil
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "overall time limit for the run (default MODERATION_TIMEOUT or 30m)")
	return cmd
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"watcher/internal/di"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 10 * time.Second
	writeGrace      = time.Minute
)

// writeTimeout outlasts the per-request run limit so a finished run can still be written.
func writeTimeout(runTimeout time.Duration) time.Duration {
	if runTimeout <= 0 {
		runTimeout = di.DefaultRunTimeout
	}
	return runTimeout + writeGrace
}

func newServeCmd(load configLoader) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the moderation page over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := load(cmd)
			if !cmd.Flags().Changed("addr") && cfg.HTTPAddr != "" {
				addr = cfg.HTTPAddr
			}

			container, err := di.NewContainer(cfg)
			if err != nil {
				return err
			}
			defer container.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := &http.Server{
				Addr:              addr,
				Handler:           container.Server,
				ReadHeaderTimeout: 10 * time.Second,
				WriteTimeout:      writeTimeout(cfg.RunTimeout),
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				container.Logger.Info("HTTP server listening", "addr", addr)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("http server: %w", err)
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				container.Logger.Info("HTTP server shutting down")
				return srv.Shutdown(shutdownCtx)
			})
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":7860", "listen address (overrides HTTP_ADDR)")
	return cmd
}

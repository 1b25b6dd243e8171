package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/widgetdeck/internal/httpserver"
	"github.com/tinytelemetry/widgetdeck/internal/widget"
)

func newServeCmd(configPath *string) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the widget HTTP API without the TUI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}
			if addr != "" {
				cfg.APIAddr = addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			fmt.Fprintf(cmd.OutOrStdout(), "widgetdeck API listening on http://%s (Ctrl+C to stop)\n", cfg.APIAddr)
			return runServe(ctx, cfg)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "override api-addr")
	return cmd
}

// runServe runs the API server and the backup loop until ctx is done.
func runServe(ctx context.Context, cfg appConfig) error {
	svc, err := openServices(cfg)
	if err != nil {
		return err
	}
	defer svc.Close()

	bm, err := svc.backupManager()
	if err != nil {
		return err
	}

	api := httpserver.NewServer(widget.Default(), widget.Deps{
		KV:     svc.store,
		Logger: svc.logger,
	}, httpserver.Options{
		Addr:      cfg.APIAddr,
		RateLimit: cfg.APIRateLimit,
		Logger:    svc.logger,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := api.Run(gctx); err != nil {
			return fmt.Errorf("api server: %w", err)
		}
		return nil
	})
	if bm != nil {
		g.Go(func() error { return bm.Run(gctx) })
	}

	err = g.Wait()
	svc.logger.Info("serve stopped", zap.Error(err))
	return err
}

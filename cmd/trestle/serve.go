package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/zulandar/trestle/internal/config"
	"github.com/zulandar/trestle/internal/db"
	"github.com/zulandar/trestle/internal/server"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the Trestle API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return fmt.Errorf("serve: logger: %w", err)
			}
			defer logger.Sync()

			conn, err := db.Connect(cfg.Database)
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(conn); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			logger.Info("starting server",
				zap.Int("port", cfg.Server.Port),
				zap.String("driver", cfg.Database.Driver),
			)

			return server.Start(ctx, server.StartOpts{
				DB:       conn,
				Port:     cfg.Server.Port,
				Secret:   cfg.Auth.Secret,
				TokenTTL: time.Duration(cfg.Auth.TokenTTLMinutes) * time.Minute,
				Logger:   logger,
				Out:      cmd.OutOrStdout(),
			})
		},
	}
}

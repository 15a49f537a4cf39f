package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/zulandar/trestle/internal/config"
	"github.com/zulandar/trestle/internal/db"
)

func newDBCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "db",
		Short: "Database management commands",
	}
	cmd.AddCommand(newDBInitCmd())
	return cmd
}

func newDBInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create or update all tables, seeding the admin account if configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			conn, err := db.Connect(cfg.Database)
			if err != nil {
				return err
			}
			if err := db.AutoMigrate(conn); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrated all tables")

			if cfg.Admin != nil {
				if err := db.SeedAdmin(conn, cfg.Admin.Email, cfg.Admin.Password, cfg.Admin.FullName); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "seeded admin %s\n", cfg.Admin.Email)
			}
			return nil
		},
	}
}

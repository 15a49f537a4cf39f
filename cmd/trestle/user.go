package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zulandar/trestle/internal/auth"
	"github.com/zulandar/trestle/internal/config"
	"github.com/zulandar/trestle/internal/db"
	"golang.org/x/term"
)

func newUserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Account management commands",
	}
	cmd.AddCommand(newUserCreateCmd())
	return cmd
}

func newUserCreateCmd() *cobra.Command {
	var email, name, role, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account, prompting for the password",
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

			if password == "" {
				fmt.Fprint(cmd.OutOrStdout(), "Password: ")
				raw, err := term.ReadPassword(int(os.Stdin.Fd()))
				fmt.Fprintln(cmd.OutOrStdout())
				if err != nil {
					return fmt.Errorf("user: read password: %w", err)
				}
				password = string(raw)
			}

			user, err := auth.Register(conn, auth.RegisterOpts{
				Email:    email,
				Password: password,
				FullName: name,
				Role:     role,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "created %s user %s (id %d)\n", user.Role, user.Email, user.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email (required)")
	cmd.Flags().StringVar(&name, "name", "", "full name")
	cmd.Flags().StringVar(&role, "role", "staff", "account role: admin or staff")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	cmd.MarkFlagRequired("email")

	return cmd
}

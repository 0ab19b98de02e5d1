package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"uxo-chatbot/internal/admin"
	"uxo-chatbot/internal/app"
	"uxo-chatbot/internal/db"
)

func newAdminCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Admin account management",
	}
	cmd.AddCommand(newAdminCreateCmd(opts))
	return cmd
}

func newAdminCreateCmd(opts *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, l, err := opts.load()
			if err != nil {
				return err
			}
			conn, err := app.OpenDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close(conn)

			tokens, err := app.NewTokens(cfg)
			if err != nil {
				return fmt.Errorf("auth: %w", err)
			}
			a, err := app.NewAdmins(cfg, conn, tokens, l).Create(cmd.Context(), admin.CreateInput{Email: email, Password: password})
			if err != nil {
				return fmt.Errorf("create admin: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created admin %s (id %d)\n", a.Email, a.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email")
	cmd.Flags().StringVar(&password, "password", "", "admin password (at least 8 characters)")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

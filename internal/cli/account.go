package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegisterCmd() *cobra.Command {
	var user, pass, picture string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Register a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}
			if picture != "" {
				req["profilePicture"] = picture
			}

			var result SimpleResult
			if err := client.Post("/api/register", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Registered %s", user))
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	cmd.Flags().StringVar(&picture, "picture", "", "Profile picture URI")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newLoginCmd() *cobra.Command {
	var user, pass string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and store the session token",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{
				"username": user,
				"password": pass,
			}

			var result LoginResult
			if err := client.Post("/api/login", req, &result); err != nil {
				return err
			}

			// Save token for subsequent commands
			if err := cfg.SaveToken(result.Token); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&user, "user", "", "Username (required)")
	cmd.Flags().StringVar(&pass, "pass", "", "Password (required)")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("pass")

	return cmd
}

func newUpdateCmd() *cobra.Command {
	var picture string

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update the profile picture of the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]string{"profilePicture": picture}

			var result SimpleResult
			if err := client.Post("/api/update-user", req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&picture, "picture", "", "Profile picture URI (required)")
	_ = cmd.MarkFlagRequired("picture")

	return cmd
}

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the logged-in account",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result SimpleResult
			if err := client.Post("/api/delete-user", nil, &result); err != nil {
				return err
			}

			// The stored token is useless now
			if err := cfg.ClearToken(); err != nil {
				return fmt.Errorf("failed to clear token: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

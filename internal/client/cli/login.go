package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *Cli) loginCommand() *cobra.Command {
	var (
		email     string
		passwords Passwords
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and save the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLogin(cmd, email, passwords)
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "student email")
	cmd.Flags().StringVar(&passwords.FromFile, "password-file", "", "path to file containing the password")
	cmd.Flags().StringVar(&passwords.FromArgs, "password", "", "password (not recommended, use "+PasswordEnv+" or --password-file)")
	return cmd
}

func (c *Cli) runLogin(cmd *cobra.Command, email string, passwords Passwords) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	if email == "" {
		var err error
		email, err = c.io.ReadInput("Email: ")
		if err != nil {
			return fmt.Errorf("failed to read email: %w", err)
		}
	}

	password, err := c.getPassword(passwords)
	if err != nil {
		return err
	}

	c.io.Println("Authenticating...")
	status, err := c.auth.Login(cmd.Context(), email, password)
	if err != nil {
		return err
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Email: %s\n", email)
	if status.Claims != nil && !status.Claims.ExpiresAt.IsZero() {
		c.io.Printf("Session expires: %s\n", status.Claims.ExpiresAt.Format("2006-01-02 15:04"))
	}
	return nil
}

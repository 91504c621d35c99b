// ABOUTME: CLI commands for user registration and login.
// ABOUTME: Passwords are prompted without echo and only bcrypt hashes are stored.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/harperreed/fittrack/internal/auth"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage the registered user",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register <email>",
	Short: "Register a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return fmt.Errorf("passwords do not match")
		}

		users := auth.NewStore(cfg.GetDataDir())
		if err := users.Register(email, password); err != nil {
			if errors.Is(err, auth.ErrEmailTaken) {
				return fmt.Errorf("user already exists: %s", email)
			}
			return fmt.Errorf("registration failed: %w", err)
		}

		color.Green("✓ Registered %s", email)
		return nil
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login <email>",
	Short: "Verify login credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		email := args[0]

		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		users := auth.NewStore(cfg.GetDataDir())
		if err := users.Login(email, password); err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				return fmt.Errorf("invalid email or password")
			}
			return fmt.Errorf("login failed: %w", err)
		}

		color.Green("✓ Login successful")
		return nil
	},
}

func promptPassword(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return string(password), nil
}

func init() {
	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userLoginCmd)
	rootCmd.AddCommand(userCmd)
}

package auth

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"jobtracker/cmd/client/cmd/types"
)

var (
	registerLogin string
	registerName  string
)

var RegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `Register a new account on the JobTracker server.

The password needs at least 8 characters with upper and lower case letters,
a digit and a special character.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		login := registerLogin
		if login == "" {
			if login, err = readLine(out, "Login: "); err != nil {
				return err
			}
		}
		name := registerName
		if name == "" && !cmd.Flags().Changed("name") {
			if name, err = readLine(out, "Name (optional): "); err != nil {
				return err
			}
		}

		password, err := readPassword(out, "Password: ")
		if err != nil {
			return err
		}
		confirm, err := readPassword(out, "Repeat password: ")
		if err != nil {
			return err
		}
		if password != confirm {
			return errors.New("passwords do not match")
		}

		if err := app.Register(cmd.Context(), login, name, password); err != nil {
			return fmt.Errorf("registration failed: %w", err)
		}

		fmt.Fprintln(out, "Account created. Log in with: jobtracker auth login")
		return nil
	},
}

func init() {
	RegisterCmd.Flags().StringVarP(&registerLogin, "login", "l", "", "account login")
	RegisterCmd.Flags().StringVarP(&registerName, "name", "n", "", "display name")
}

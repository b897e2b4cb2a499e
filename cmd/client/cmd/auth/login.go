package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobtracker/cmd/client/cmd/types"
)

var loginName string

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the server",
	Long: `Authenticate against the JobTracker server.

The session token is stored locally and sent with every following command
until you log out or it expires.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		login := loginName
		if login == "" {
			if login, err = readLine(out, "Login: "); err != nil {
				return err
			}
		}
		password, err := readPassword(out, "Password: ")
		if err != nil {
			return err
		}

		resp, err := app.Login(cmd.Context(), login, password)
		if err != nil {
			return fmt.Errorf("login failed: %w", err)
		}

		who := resp.Name
		if who == "" {
			who = login
		}
		fmt.Fprintf(out, "Welcome, %s!\n", who)
		return nil
	},
}

func init() {
	LoginCmd.Flags().StringVarP(&loginName, "login", "l", "", "account login")
}

package cmd

import (
	"errors"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"jobtracker/cmd/client/cmd/application"
	"jobtracker/cmd/client/cmd/auth"
	"jobtracker/cmd/client/cmd/types"
	"jobtracker/internal/app/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the server connection and the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if err := app.CheckConnection(cmd.Context()); err != nil {
			fmt.Fprintf(out, "%s server unreachable: %v\n", color.RedString("✗"), err)
		} else {
			fmt.Fprintf(out, "%s server is up\n", color.GreenString("✓"))
		}

		login, name, err := app.CurrentUser(cmd.Context())
		switch {
		case errors.Is(err, client.ErrNotLoggedIn):
			fmt.Fprintln(out, "not logged in")
		case err != nil:
			return err
		case name != "":
			fmt.Fprintf(out, "logged in as %s (%s)\n", login, name)
		default:
			fmt.Fprintf(out, "logged in as %s\n", login)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)

	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.RegisterCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)

	rootCmd.AddCommand(application.ApplicationCmd)
	application.ApplicationCmd.AddCommand(application.ListCmd)
	application.ApplicationCmd.AddCommand(application.GetCmd)
	application.ApplicationCmd.AddCommand(application.CreateCmd)
	application.ApplicationCmd.AddCommand(application.UpdateCmd)
	application.ApplicationCmd.AddCommand(application.DeleteCmd)
}

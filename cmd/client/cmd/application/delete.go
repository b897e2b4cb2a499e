package application

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobtracker/cmd/client/cmd/types"
)

var DeleteCmd = &cobra.Command{
	Use:     "delete [id]",
	Aliases: []string{"rm"},
	Short:   "Delete an application permanently",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}
		if err := app.DeleteApplication(cmd.Context(), args[0]); err != nil {
			return fmt.Errorf("delete application: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted application %s\n", args[0])
		return nil
	},
}

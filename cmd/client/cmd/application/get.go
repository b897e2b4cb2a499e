package application

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobtracker/cmd/client/cmd/types"
)

var getFormat string

var GetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one application",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		a, err := app.GetApplication(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("get application: %w", err)
		}

		if getFormat == "json" {
			return printJSON(cmd.OutOrStdout(), a)
		}
		printApplication(cmd.OutOrStdout(), a)
		return nil
	},
}

func init() {
	GetCmd.Flags().StringVarP(&getFormat, "format", "f", "human", "output format (human, json)")
}

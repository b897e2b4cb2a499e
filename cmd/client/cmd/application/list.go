package application

import (
	"fmt"

	"github.com/spf13/cobra"

	"jobtracker/cmd/client/cmd/types"
)

var (
	listFilter string
	listSort   string
	listFormat string
)

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the dashboard",
	Long: `List your applications with per-status counts.

--filter takes all, applied, interviewing, offer, accepted or rejected.
--sort takes latest or earliest applied date. The server falls back to
all and latest for anything else.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		d, err := app.Dashboard(cmd.Context(), listFilter, listSort)
		if err != nil {
			return fmt.Errorf("load applications: %w", err)
		}

		out := cmd.OutOrStdout()
		switch listFormat {
		case "json":
			return printJSON(out, d)
		case "simple":
			return printDashboardSimple(out, d)
		default:
			return printDashboardTable(out, d)
		}
	},
}

func init() {
	ListCmd.Flags().StringVarP(&listFilter, "filter", "s", "all", "status filter")
	ListCmd.Flags().StringVar(&listSort, "sort", "latest", "sort by applied date (latest, earliest)")
	ListCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "output format (table, simple, json)")
}

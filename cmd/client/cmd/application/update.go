package application

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"jobtracker/cmd/client/cmd/types"
	"jobtracker/internal/app/client"
)

var (
	updateCompany string
	updateTitle   string
	updateURL     string
	updateStatus  string
	updateDate    string
)

var UpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Change an application",
	Long: `Update the given fields of an application. Fields without a flag keep
their current value; pass --url "" to clear the posting URL.`,
	Example: `  jobtracker application update 6f1c... --status interviewing`,
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		req := updateRequest(cmd.Flags())
		a, err := app.UpdateApplication(cmd.Context(), args[0], req)
		if err != nil {
			return fmt.Errorf("update application: %w", err)
		}

		printApplication(cmd.OutOrStdout(), a)
		return nil
	},
}

// updateRequest includes only the flags given on the command line.
func updateRequest(flags *pflag.FlagSet) client.UpdateApplicationRequest {
	var req client.UpdateApplicationRequest
	set := func(name string, value string) *string {
		if !flags.Changed(name) {
			return nil
		}
		return &value
	}
	req.CompanyName = set("company", updateCompany)
	req.JobTitle = set("title", updateTitle)
	req.ApplicationURL = set("url", updateURL)
	req.Status = set("status", updateStatus)
	req.AppliedDate = set("date", updateDate)
	return req
}

func init() {
	UpdateCmd.Flags().StringVarP(&updateCompany, "company", "c", "", "company name")
	UpdateCmd.Flags().StringVarP(&updateTitle, "title", "t", "", "job title")
	UpdateCmd.Flags().StringVarP(&updateURL, "url", "u", "", "job posting URL")
	UpdateCmd.Flags().StringVarP(&updateStatus, "status", "s", "", "status")
	UpdateCmd.Flags().StringVarP(&updateDate, "date", "d", "", "applied date YYYY-MM-DD")
}

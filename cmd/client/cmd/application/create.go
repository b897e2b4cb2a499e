package application

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"jobtracker/cmd/client/cmd/types"
	"jobtracker/internal/app/client"
)

var createReq client.CreateApplicationRequest

var CreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add an application",
	Example: `  jobtracker application create --company Acme --title "Backend Engineer" \
    --date 2024-05-01 --url https://acme.example/jobs/42`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := types.AppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		req := createReq
		if req.AppliedDate == "" {
			req.AppliedDate = time.Now().Format(time.DateOnly)
		}

		a, err := app.CreateApplication(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("create application: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Created application %s\n\n", a.ID)
		printApplication(cmd.OutOrStdout(), a)
		return nil
	},
}

func init() {
	CreateCmd.Flags().StringVarP(&createReq.CompanyName, "company", "c", "", "company name")
	CreateCmd.Flags().StringVarP(&createReq.JobTitle, "title", "t", "", "job title")
	CreateCmd.Flags().StringVarP(&createReq.ApplicationURL, "url", "u", "", "job posting URL")
	CreateCmd.Flags().StringVarP(&createReq.Status, "status", "s", "", "status (default applied)")
	CreateCmd.Flags().StringVarP(&createReq.AppliedDate, "date", "d", "", "applied date YYYY-MM-DD (default today)")
	_ = CreateCmd.MarkFlagRequired("company")
	_ = CreateCmd.MarkFlagRequired("title")
}

package application

import (
	"github.com/spf13/cobra"
)

// ApplicationCmd groups the commands that work with job applications.
var ApplicationCmd = &cobra.Command{
	Use:     "application",
	Aliases: []string{"app", "apps"},
	Short:   "Manage job applications",
	Long:    `List, view, create, update and delete your job applications.`,
}

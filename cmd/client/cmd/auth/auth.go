package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd groups account and session commands.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage your account",
	Long:  `Register an account, log in and log out.`,
}

// Package cmd implements the command-line interface for framecast.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/framecast-cli/framecast/auth"
	"github.com/framecast-cli/framecast/icon"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}

// logoutCmd revokes the remote session and removes stored credentials.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Revoke the remote session and remove stored credentials",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) {
			var confirmed bool
			handleErr(survey.AskOne(&survey.Confirm{
				Message: "Log out and forget this server?",
				Default: false,
			}, &confirmed))

			if !confirmed {
				return
			}
		}

		handleErr(auth.Logout())
		fmt.Printf("%s logged out\n", icon.Get(icon.Success))
	},
}

// Package cmd implements the command-line interface for framecast.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/framecast-cli/framecast/auth"
	"github.com/framecast-cli/framecast/color"
	"github.com/framecast-cli/framecast/icon"
	"github.com/framecast-cli/framecast/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().StringP("address", "a", "", "Media server address")
	loginCmd.Flags().StringP("username", "u", "", "Account username")
	loginCmd.Flags().StringP("password", "p", "", "Account password (prompted when omitted)")
}

// loginCmd authenticates against the media server and stores the session.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate against the media server and store the session",
	Run: func(cmd *cobra.Command, args []string) {
		address := lo.Must(cmd.Flags().GetString("address"))
		username := lo.Must(cmd.Flags().GetString("username"))
		password := lo.Must(cmd.Flags().GetString("password"))

		if address == "" {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Server address:",
				Help:    "Host, host:port or a full URL; https on port 443 is assumed when omitted",
			}, &address, survey.WithValidator(survey.Required)))
		}

		if username == "" {
			handleErr(survey.AskOne(&survey.Input{
				Message: "Username:",
			}, &username, survey.WithValidator(survey.Required)))
		}

		if password == "" {
			handleErr(survey.AskOne(&survey.Password{
				Message: "Password:",
			}, &password))
		}

		record, err := auth.Login(address, username, password)
		handleErr(err)

		fmt.Printf(
			"%s logged in to %s (server version %s)\n",
			style.Fg(color.Green)(icon.Get(icon.Success)),
			style.Fg(color.Purple)(record.Address),
			record.ServerVersion,
		)
	},
}

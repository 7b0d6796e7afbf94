package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Drop the stored session",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		if err := session.Logout(cmd.Context()); err != nil {
			exitIfSDKError(err)
		}
		fmt.Println("Logged out")
	},
}

func init() {
	authCmd.AddCommand(logoutCmd)
}

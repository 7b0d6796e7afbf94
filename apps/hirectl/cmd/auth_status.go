package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/hsdk"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current authentication status",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		ctx := cmd.Context()
		store := session.Store()

		if !store.IsAuthenticated(ctx) {
			fmt.Println("Not logged in. Run 'hirectl auth login'.")
			return
		}

		fmt.Printf("Logged in as: %s\n", store.UserID(ctx))
		if phone := store.RecruiterPhone(ctx); phone != "" {
			fmt.Printf("Recruiter phone: %s\n", phone)
		}

		token := store.AccessToken(ctx)
		if mc := hsdk.DecodeClaims(token); mc != nil {
			if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
				fmt.Printf("Token expires: %s\n", exp.Format(time.RFC3339))
			}
		}
		if hsdk.IsExpired(token) {
			fmt.Println("Access token is expired or near expiry; it will refresh on next use.")
		}
	},
}

func init() {
	authCmd.AddCommand(statusCmd)
}

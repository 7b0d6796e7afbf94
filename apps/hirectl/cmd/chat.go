package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/hsdk"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Profile a vacancy through the AI recruiter chat",
	Long: `Send a message to the AI profiling chat for a vacancy and stream the
assistant's reply. The chat endpoint forces a token refresh before every
request; its backend rejects near-expiry tokens.`,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		vacancyID, _ := cmd.Flags().GetString("vacancy")
		message, _ := cmd.Flags().GetString("message")

		_, err = session.StreamChat(cmd.Context(), "/recruiter/chat",
			hsdk.ChatRequest{VacancyID: vacancyID, Message: message},
			func(chunk string) { fmt.Print(chunk) },
		)
		fmt.Println()
		if err != nil {
			exitIfSDKError(err)
		}
	},
}

func init() {
	chatCmd.Flags().String("vacancy", "", "Vacancy ID to profile")
	chatCmd.Flags().StringP("message", "m", "", "Message to send")
	_ = chatCmd.MarkFlagRequired("vacancy")
	_ = chatCmd.MarkFlagRequired("message")
	rootCmd.AddCommand(chatCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/hsdk"
)

var vacancyCmd = &cobra.Command{
	Use:   "vacancy",
	Short: "Manage job vacancies (list, create, close)",
}

var vacancyListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your vacancies",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		vacancies, err := hsdk.GetJSON[[]hsdk.Vacancy](cmd.Context(), session, "/vacancies")
		if err != nil {
			exitIfSDKError(err)
		}
		if len(vacancies) == 0 {
			fmt.Println("No vacancies yet. Create one with 'hirectl vacancy create'.")
			return
		}
		for _, v := range vacancies {
			fmt.Printf("%s\t%-10s\t%s\n", v.ID, v.Status, v.Title)
		}
	},
}

var vacancyCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a vacancy draft",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		title, _ := cmd.Flags().GetString("title")
		description, _ := cmd.Flags().GetString("description")

		created, err := hsdk.PostJSON[hsdk.Vacancy](cmd.Context(), session, "/vacancies", hsdk.Vacancy{
			Title:       title,
			Description: description,
		})
		if err != nil {
			exitIfSDKError(err)
		}
		fmt.Printf("Created vacancy %s (%s)\n", created.ID, created.Title)
		fmt.Println("Run 'hirectl chat --vacancy " + created.ID + "' to profile it.")
	},
}

var vacancyCloseCmd = &cobra.Command{
	Use:   "close <vacancy-id>",
	Short: "Close a vacancy",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		updated, err := hsdk.PatchJSON[hsdk.Vacancy](cmd.Context(), session, "/vacancies/"+args[0],
			map[string]string{"status": "closed"})
		if err != nil {
			exitIfSDKError(err)
		}
		fmt.Printf("Vacancy %s is now %s\n", updated.ID, updated.Status)
	},
}

var vacancyDeleteCmd = &cobra.Command{
	Use:   "delete <vacancy-id>",
	Short: "Delete a vacancy draft",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		if _, err := hsdk.DeleteJSON[struct{}](cmd.Context(), session, "/vacancies/"+args[0]); err != nil {
			exitIfSDKError(err)
		}
		fmt.Println("Deleted")
	},
}

func init() {
	vacancyCreateCmd.Flags().String("title", "", "Vacancy title")
	vacancyCreateCmd.Flags().String("description", "", "Free-form description")
	_ = vacancyCreateCmd.MarkFlagRequired("title")

	vacancyCmd.AddCommand(vacancyListCmd, vacancyCreateCmd, vacancyCloseCmd, vacancyDeleteCmd)
	rootCmd.AddCommand(vacancyCmd)
}

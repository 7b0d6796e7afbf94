package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/hsdk"
)

var candidateCmd = &cobra.Command{
	Use:   "candidate",
	Short: "Review candidates and their screening scores",
}

var candidateListCmd = &cobra.Command{
	Use:   "list",
	Short: "List candidates on a vacancy, best score first",
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		vacancyID, _ := cmd.Flags().GetString("vacancy")
		candidates, err := hsdk.GetJSON[[]hsdk.Candidate](cmd.Context(), session,
			"/vacancies/"+vacancyID+"/candidates")
		if err != nil {
			exitIfSDKError(err)
		}
		if len(candidates) == 0 {
			fmt.Println("No candidates yet.")
			return
		}
		for _, c := range candidates {
			score := "-"
			if c.Score != nil {
				score = fmt.Sprintf("%.0f", c.Score.Total)
			}
			fmt.Printf("%s\t%-10s\t%5s\t%s\n", c.ID, c.Status, score, c.Name)
		}
	},
}

var candidateShowCmd = &cobra.Command{
	Use:   "show <candidate-id>",
	Short: "Show a candidate with the full score breakdown",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		c, err := hsdk.GetJSON[hsdk.Candidate](cmd.Context(), session, "/candidates/"+args[0])
		if err != nil {
			exitIfSDKError(err)
		}
		fmt.Printf("Name: %s\nEmail: %s\nStatus: %s\n", c.Name, c.Email, c.Status)
		if c.Score != nil {
			fmt.Printf("Score: %.0f (experience %.0f, education %.0f, skills %.0f)\n",
				c.Score.Total, c.Score.Experience, c.Score.Education, c.Score.Skills)
			if c.Score.Reasoning != "" {
				fmt.Printf("Reasoning: %s\n", c.Score.Reasoning)
			}
		}
	},
}

var candidateApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Submit a candidate application with a resume file",
	Long: `Submit an application on behalf of a candidate. The resume is uploaded
as multipart form data; parsing and scoring happen on the backend.`,
	Run: func(cmd *cobra.Command, args []string) {
		session, err := newSession(cmd)
		if err != nil {
			exitIfSDKError(err)
		}
		vacancyID, _ := cmd.Flags().GetString("vacancy")
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		resumePath, _ := cmd.Flags().GetString("resume")

		file, err := os.Open(resumePath)
		if err != nil {
			exitIfSDKError(err)
		}
		defer file.Close()

		fields := map[string]string{
			"vacancy_id": vacancyID,
			"name":       name,
			"email":      email,
		}
		created, err := hsdk.PostMultipart[hsdk.Candidate](cmd.Context(), session,
			"/vacancies/"+vacancyID+"/candidates", fields, "resume", filepath.Base(resumePath), file)
		if err != nil {
			exitIfSDKError(err)
		}
		fmt.Printf("Application submitted: %s (%s)\n", created.ID, created.Status)
	},
}

func init() {
	candidateListCmd.Flags().String("vacancy", "", "Vacancy ID")
	_ = candidateListCmd.MarkFlagRequired("vacancy")

	candidateApplyCmd.Flags().String("vacancy", "", "Vacancy ID")
	candidateApplyCmd.Flags().String("name", "", "Candidate name")
	candidateApplyCmd.Flags().String("email", "", "Candidate email")
	candidateApplyCmd.Flags().String("resume", "", "Path to the resume file")
	_ = candidateApplyCmd.MarkFlagRequired("vacancy")
	_ = candidateApplyCmd.MarkFlagRequired("name")
	_ = candidateApplyCmd.MarkFlagRequired("resume")

	candidateCmd.AddCommand(candidateListCmd, candidateShowCmd, candidateApplyCmd)
	rootCmd.AddCommand(candidateCmd)
}

package cmd

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/hsdk"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate to the hireloop backend",
	Long: `Log in to the hireloop backend with recruiter credentials.

Examples:
	# prompt for the password interactively
	hirectl auth login --email you@example.com

	# non-interactive (password from flag or HIRELOOP_PASSWORD)
	hirectl auth login --email you@example.com --password secret

The issued token pair is saved to the session store and refreshed
automatically by subsequent commands.`,
	Run: runLogin,
}

func runLogin(cmd *cobra.Command, args []string) {
	session, err := newSession(cmd)
	if err != nil {
		exitIfSDKError(err)
	}

	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")
	if password == "" {
		password = os.Getenv("HIRELOOP_PASSWORD")
	}
	if password == "" {
		fmt.Print("Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			log.Fatalf("failed to read password: %v", err)
		}
		password = strings.TrimSpace(line)
	}

	ctx := cmd.Context()
	if err := session.Login(ctx, hsdk.Credentials{Email: email, Password: password}); err != nil {
		exitIfSDKError(err)
	}

	token := session.Store().AccessToken(ctx)
	if mc := hsdk.DecodeClaims(token); mc != nil {
		expStr := "unknown"
		if exp, err := mc.GetExpirationTime(); err == nil && exp != nil {
			expStr = exp.Format(time.RFC3339)
		}
		fmt.Printf("Logged in as: %s\n", session.Store().UserID(ctx))
		fmt.Printf("Token expires: %s\n", expStr)
	} else {
		logger.Warn("failed to parse token claims")
	}

	if phone, _ := cmd.Flags().GetString("phone"); phone != "" {
		if err := session.Store().SetRecruiterPhone(ctx, phone); err != nil {
			logger.Warn("failed to save recruiter phone", "err", err)
		}
	}

	fmt.Println("Access token saved")
}

func init() {
	loginCmd.Flags().String("email", "", "Recruiter account email")
	loginCmd.Flags().String("password", "", "Recruiter account password (prompts if omitted)")
	loginCmd.Flags().String("phone", "", "Recruiter contact phone to store alongside the session")
	_ = loginCmd.MarkFlagRequired("email")
	authCmd.AddCommand(loginCmd)
}

package cmd

import (
	"context"
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/hlog"
	"github.com/hireloop/hireloop/pkg/hsdk"
)

type contextKey string

const configContextKey contextKey = "hireloopconfig"

var (
	cfgFile string
	logger  = hlog.NewDefault()
	rootCmd = &cobra.Command{
		Use:   "hirectl",
		Short: "CLI for the hireloop recruiting backend (auth, vacancies, candidates, chat)",
		Long: `hirectl is a command-line client for a hireloop recruiting backend.
It provides subcommands to authenticate, manage job vacancies, review
scored candidates, and run the AI profiling chat. Use the auth
subcommands to obtain and manage tokens; tokens are stored in the OS
keyring (or Redis for headless deployments) and refreshed automatically.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
				logger = hlog.NewVerbose()
			}

			// Optional .env for local development.
			_ = godotenv.Load()

			cfg, err := hsdk.LoadConfig(cfgFile)
			if err != nil {
				return err
			}

			if err := cfg.Viper().BindPFlags(cmd.Flags()); err != nil {
				return err
			}
			if flagURL, _ := cmd.Flags().GetString("base-url"); flagURL != "" {
				cfg.BaseURL = flagURL
			}

			ctx := context.WithValue(cmd.Context(), configContextKey, cfg)
			cmd.SetContext(ctx)

			return nil
		},
	}
)

// GetConfig retrieves the Config from the command context
func GetConfig(cmd *cobra.Command) (*hsdk.Config, error) {
	ctx := cmd.Context()
	cfg, ok := ctx.Value(configContextKey).(*hsdk.Config)
	if !ok {
		return nil, errors.New("no config in context")
	}
	return cfg, nil
}

func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML). Searches: hireloop.yaml, .hireloop/config.yaml")
	rootCmd.PersistentFlags().String("base-url", "", "Base URL for the hireloop backend (overrides config)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}

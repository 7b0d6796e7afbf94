package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hireloop/hireloop/pkg/hsdk"
)

// newSession wires config + store + session for a command. The registered
// expired callback prints re-login guidance once; commands still receive the
// session-expired error and exit through exitIfSDKError.
func newSession(cmd *cobra.Command) (*hsdk.Session, error) {
	cfg, err := GetConfig(cmd)
	if err != nil {
		return nil, err
	}
	store, err := cfg.NewStore()
	if err != nil {
		return nil, err
	}

	logger.Debug("session ready", "baseUrl", cfg.BaseURL, "tokenStore", cfg.TokenStore)

	session := hsdk.NewSession(cfg, store)
	session.OnSessionExpired(func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run 'hirectl auth login' to re-authenticate.")
	})
	return session, nil
}

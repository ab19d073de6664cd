package cli

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nhle/project-tracker/internal/credential"
)

// NewSecretCommand creates the secret command, which manages the session
// token signing secret in the keyring.
func NewSecretCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "secret",
		Short: "Manage the token signing secret stored in the keyring",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "generate",
		Short: "Generate a random token secret and store it in the keyring",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadRuntime(opts)
			if err != nil {
				return err
			}
			creds, err := credential.Open(cfg.Auth.KeyringDir)
			if err != nil {
				return err
			}
			secret, err := generateSecret()
			if err != nil {
				return err
			}
			if err := creds.Set(credential.TokenSecretKey, secret); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "token secret stored in keyring")
			return nil
		},
	})

	return cmd
}

func generateSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating secret: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

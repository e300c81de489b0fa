package main

import (
	"fmt"

	"github.com/SscSPs/currency_exchange_app/internal/utils"
	"github.com/spf13/cobra"
)

// tokenCmd mints a token for local development; production tokens come from the identity provider.
var tokenCmd = &cobra.Command{
	Use:   "token USER_ID",
	Short: "Mint a JWT for a user id (development only)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expiry, _ := cmd.Flags().GetDuration("expiry")
		if expiry <= 0 {
			expiry = cfg.JWTExpiryDuration
		}

		token, err := utils.GenerateJWT(args[0], cfg.JWTSecret, expiry, cfg.JWTIssuer)
		if err != nil {
			return fmt.Errorf("failed to sign token: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

var hashAdminKeyCmd = &cobra.Command{
	Use:   "hash-admin-key [KEY]",
	Short: "Print the bcrypt hash to put in ADMIN_API_KEY_HASH",
	Long:  "Hashes KEY, or a freshly generated random key when none is given.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()

		var key string
		if len(args) == 1 {
			key = args[0]
		} else {
			generated, err := utils.GenerateSecureRandomString(32)
			if err != nil {
				return err
			}
			key = generated
			fmt.Fprintf(out, "ADMIN_API_KEY=%s\n", key)
		}

		hash, err := utils.HashSecret(key)
		if err != nil {
			return fmt.Errorf("failed to hash admin key: %w", err)
		}
		fmt.Fprintf(out, "ADMIN_API_KEY_HASH=%s\n", hash)
		return nil
	},
}

func init() {
	tokenCmd.Flags().Duration("expiry", 0, "token lifetime (default: JWT_EXPIRY_DURATION)")
}

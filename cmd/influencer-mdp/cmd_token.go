package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"influencerMDP/internal/middleware"

	"github.com/spf13/cobra"
)

var (
	tokenSecret string
	tokenUser   string
	tokenRole   string
	tokenTTL    time.Duration
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Mint a bearer token for the API",
	RunE:  runToken,
}

func init() {
	tokenCmd.Flags().StringVar(&tokenSecret, "secret", "", "Signing secret (defaults to $JWT_SECRET)")
	tokenCmd.Flags().StringVar(&tokenUser, "user", "operator", "Subject user id")
	tokenCmd.Flags().StringVar(&tokenRole, "role", middleware.RoleAdmin, "Role claim")
	tokenCmd.Flags().DurationVar(&tokenTTL, "ttl", time.Hour, "Token lifetime")
	rootCmd.AddCommand(tokenCmd)
}

func runToken(cmd *cobra.Command, args []string) error {
	secret := tokenSecret
	if secret == "" {
		secret = os.Getenv("JWT_SECRET")
	}
	if secret == "" {
		return errors.New("no signing secret: pass --secret or set JWT_SECRET")
	}

	token, err := middleware.GenerateToken(secret, tokenUser, tokenRole, tokenTTL)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), token)
	return nil
}

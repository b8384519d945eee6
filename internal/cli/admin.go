package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"ShinnPerfume/internal/auth"
)

func newHashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password <password>",
		Short: "Print the bcrypt hash to use as the storefront adminPasswordHash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := auth.HashPassword(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

func newTokenCmd() *cobra.Command {
	var (
		secret string
		ttl    time.Duration
	)
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a storefront admin JWT",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if len(secret) < 32 {
				return fmt.Errorf("--secret must be at least 32 chars")
			}
			tok, err := auth.NewTokenMaker(secret).New("admin", auth.RoleAdmin, ttl)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "secret", os.Getenv("JWT_SECRET"), "storefront JWT secret ($JWT_SECRET)")
	cmd.Flags().DurationVar(&ttl, "ttl", auth.AdminTokenTTL, "token lifetime")
	return cmd
}

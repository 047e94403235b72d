package main

import (
	"fmt"
	"time"

	"github.com/mariam168/smart-shop-sub001/auth"
	"github.com/mariam168/smart-shop-sub001/config"
	"github.com/spf13/cobra"
)

func newTokenCmd() *cobra.Command {
	var role string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "token <user-id>",
		Short: "Print a signed user token for local testing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			token, err := auth.IssueToken(args[0], role, cfg.JWTSecret, ttl, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", auth.RoleUser, "role claim")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "token lifetime")
	return cmd
}

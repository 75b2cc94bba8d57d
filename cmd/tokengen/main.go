// Command tokengen prints a signed access token for the campus API.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/yigit/campus/internal/app/models"
	"github.com/yigit/campus/internal/bootstrap"
	"github.com/yigit/campus/internal/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		cfgFile string
		subject string
		role    string
	)

	cmd := &cobra.Command{
		Use:   "tokengen",
		Short: "Issue an access token for the campus API",
		Long: `tokengen signs a token with the secret from the campus configuration.

Write routes accept only tokens carrying the REGISTRAR role.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig(cfgFile)
			if err != nil {
				return err
			}
			if cfg.Auth.Secret == "" {
				return fmt.Errorf("auth secret is not configured")
			}

			roleType := models.RoleType(strings.ToUpper(role))
			switch roleType {
			case models.RoleRegistrar, models.RoleViewer:
			default:
				return fmt.Errorf("unknown role %q", role)
			}

			token, expiresAt, err := bootstrap.NewJWTService(cfg).GenerateToken(subject, roleType)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			fmt.Fprintf(cmd.ErrOrStderr(), "expires %s\n", expiresAt.Format(time.RFC3339))
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgFile, "config", config.Path(), "config file")
	cmd.Flags().StringVar(&subject, "subject", "registrar", "token subject")
	cmd.Flags().StringVar(&role, "role", string(models.RoleRegistrar), "token role (REGISTRAR|VIEWER)")

	return cmd
}

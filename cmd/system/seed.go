package system

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/medassist/medassist_backend/config"
	"github.com/medassist/medassist_backend/internal/service/user"
	"github.com/medassist/medassist_backend/pkg/authorize"
	"github.com/medassist/medassist_backend/pkg/database"
)

func NewSeedAdminCommand() *cobra.Command {
	var (
		email     string
		pass      string
		firstName string
		lastName  string
	)

	cmd := &cobra.Command{
		Use:   "seed-admin",
		Short: "Create the initial administrateur account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfgPath, err := cmd.Root().PersistentFlags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			cfg, err := config.ReadConfig(filepath.Dir(cfgPath))
			if err != nil {
				return fmt.Errorf("failed to read config: %w", err)
			}

			client, err := database.NewEntClient(cfg.Database)
			if err != nil {
				return fmt.Errorf("failed to create ent client: %w", err)
			}
			defer client.Close()

			casbinDBDSN := database.NewDSN(cfg.CasbinDatabase)
			enforcer, cleanup, err := authorize.NewEnforcer(cfg.Authorization.CasbinModelPath, casbinDBDSN)
			if err != nil {
				return fmt.Errorf("failed to create enforcer: %w", err)
			}
			defer cleanup(context.Background())

			auth, err := authorize.NewAuthorization(enforcer)
			if err != nil {
				return fmt.Errorf("failed to create authorization: %w", err)
			}

			svc := user.New(client, auth, slog.Default())
			u, err := svc.Create(context.Background(), user.CreateRequest{
				FirstName: firstName,
				LastName:  lastName,
				Email:     email,
				Password:  pass,
				Roles:     []string{"administrateur"},
			})
			if err != nil {
				return fmt.Errorf("failed to create admin: %w", err)
			}

			fmt.Printf("Admin account created (id=%d, email=%s).\n", u.ID, u.Email)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "admin email address (required)")
	cmd.Flags().StringVar(&pass, "password", "", "admin password (required)")
	cmd.Flags().StringVar(&firstName, "first-name", "Admin", "admin first name")
	cmd.Flags().StringVar(&lastName, "last-name", "MedAssist", "admin last name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

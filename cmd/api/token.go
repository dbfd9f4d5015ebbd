package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jas-4484/enrollment-api/internal/auth"
	"github.com/jas-4484/enrollment-api/internal/config"
	"github.com/jas-4484/enrollment-api/internal/models"
)

type tokenOptions struct {
	Username  string
	Role      string
	StudentID string
}

// newTokenCommand prints a signed token, for calling the API from scripts.
func newTokenCommand() *cobra.Command {
	opts := &tokenOptions{}

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Print a signed access token",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := opts.user()
			if err != nil {
				return err
			}
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			token, err := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL).GenerateJWT(user)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Username, "username", "", "subject of the token")
	cmd.Flags().StringVar(&opts.Role, "role", string(models.RoleStudent), "role (admin|student)")
	cmd.Flags().StringVar(&opts.StudentID, "student-id", "", "student id; defaults to the username for students")
	return cmd
}

func (o *tokenOptions) user() (models.User, error) {
	if o.Username == "" {
		return models.User{}, fmt.Errorf("--username is required")
	}
	u := models.User{Username: o.Username, Role: models.UserRole(o.Role)}
	switch u.Role {
	case models.RoleAdmin:
	case models.RoleStudent:
		u.StudentID = o.StudentID
		if u.StudentID == "" {
			u.StudentID = o.Username
		}
	default:
		return models.User{}, fmt.Errorf("invalid role %q: must be admin or student", o.Role)
	}
	return u, nil
}

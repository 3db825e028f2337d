package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/haleway/internal/auth"
)

func newTokenCmd(app *App) *cobra.Command {
	var id auth.Identity

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a signed access token for development",
		Long: `Mint a token the way the membership service would, granting access to
the given trips. Intended for local testing with curl or buf.`,
		Example: `  haleway token --user alice --trip trip-1 --admin trip-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.cfg.RequireSecret(); err != nil {
				return err
			}
			jwtManager := auth.NewJWTManager(app.cfg.Auth.JWTSecret, app.cfg.Auth.TokenTTL)
			token, err := jwtManager.Generate(id)
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "%s", token)
			return nil
		},
	}

	cmd.Flags().StringVar(&id.UserID, "user", "", "user id (required)")
	cmd.Flags().StringVar(&id.Email, "email", "", "user email")
	cmd.Flags().StringSliceVar(&id.Trips, "trip", nil, "trip the user is a member of (repeatable)")
	cmd.Flags().StringSliceVar(&id.AdminTrips, "admin", nil, "trip the user administers (repeatable)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}

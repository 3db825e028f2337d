package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/haleway/internal/engine"
	"github.com/mmynk/haleway/internal/models"
	"github.com/mmynk/haleway/internal/seed"
)

func newTemplatesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage templates",
	}
	cmd.AddCommand(newTemplatesExportCmd(app))
	return cmd
}

func newTemplatesExportCmd(app *App) *cobra.Command {
	var (
		userID string
		kind   string
	)

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write templates to a seed document",
		Long: `Write the system templates, plus those owned by --user, to a HuJSON
seed document. The output can be fed back to "haleway seed --file".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var k models.Kind
			if kind != "" {
				var err error
				if k, err = models.ParseKind(kind); err != nil {
					return err
				}
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			n, err := seed.Export(cmd.Context(), engine.New(store), userID, k, args[0])
			if err != nil {
				return err
			}
			writeLine(cmd.OutOrStdout(), "exported %d templates to %s", n, args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "also export this user's templates")
	cmd.Flags().StringVar(&kind, "kind", "", "packing or grocery (default: both)")
	return cmd
}

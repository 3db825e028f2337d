package cli

import (
	"github.com/spf13/cobra"

	"github.com/mmynk/haleway/internal/seed"
)

func newSeedCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Create missing system templates",
		Long: `Create the system templates from a HuJSON seed document.

Templates are matched by kind and name; existing ones are left untouched, so
seeding is safe to repeat. Without --file (or seed.file) the built-in
templates are used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if file == "" {
				file = app.cfg.Seed.File
			}
			doc, err := seed.Load(file)
			if err != nil {
				return err
			}

			store, err := app.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			res, err := seed.Seed(cmd.Context(), store, doc)
			if err != nil {
				return err
			}
			for _, key := range res.Created {
				writeLine(cmd.OutOrStdout(), "created %s", key)
			}
			for _, key := range res.Skipped {
				writeLine(cmd.OutOrStdout(), "exists  %s", key)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "seed document (default: built-in templates)")
	return cmd
}

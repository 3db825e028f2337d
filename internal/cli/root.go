// Package cli implements the haleway command tree.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mmynk/haleway/internal/config"
	"github.com/mmynk/haleway/internal/storage/sqlite"
	"github.com/mmynk/haleway/pkg/logging"
)

// App carries state shared by every subcommand.
type App struct {
	ConfigPath string

	v   *viper.Viper
	cfg *config.Config
}

// NewRootCmd builds the haleway command.
func NewRootCmd() *cobra.Command {
	app := &App{v: config.New()}

	cmd := &cobra.Command{
		Use:           "haleway",
		Short:         "Trip packing and grocery checklists",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", "", "YAML config file")
	cmd.PersistentFlags().String("db", "", "SQLite database path (database.path)")
	cmd.PersistentFlags().String("log-level", "", "debug, info, warn or error (log.level)")
	cmd.PersistentFlags().String("log-format", "", "text or json (log.format)")
	_ = app.v.BindPFlag("database.path", cmd.PersistentFlags().Lookup("db"))
	_ = app.v.BindPFlag("log.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = app.v.BindPFlag("log.format", cmd.PersistentFlags().Lookup("log-format"))

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(app.v, app.ConfigPath)
		if err != nil {
			return err
		}
		app.cfg = cfg
		logging.Setup(cfg.Log.Level, cfg.Log.Format)
		return nil
	}

	cmd.AddCommand(newServeCmd(app))
	cmd.AddCommand(newSeedCmd(app))
	cmd.AddCommand(newTemplatesCmd(app))
	cmd.AddCommand(newTokenCmd(app))

	return cmd
}

// openStore opens the configured database, applying migrations.
func (app *App) openStore() (*sqlite.SQLiteStore, error) {
	store, err := sqlite.New(app.cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database %s: %w", app.cfg.Database.Path, err)
	}
	return store, nil
}

func writeLine(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format+"\n", args...)
}

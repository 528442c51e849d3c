package cmd

import (
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/san-e/flint/core/database"
	"github.com/san-e/flint/feature/export"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the mission model to a database",
	Long: `Folds the installation's mission files and writes the resulting model
into the configured database (sqlite file by default, mysql via
DATABASE_DRIVER=mysql).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		start := time.Now()

		cfg, logg, err := bootstrap()
		if err != nil {
			return err
		}
		svc, err := newService(cfg, logg)
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg.Database)
		if err != nil {
			return err
		}

		exporter := export.NewExporter(db, logg)
		if err := exporter.Migrate(); err != nil {
			return err
		}
		if err := exporter.Export(svc); err != nil {
			return err
		}

		logg.Info("export completed",
			zap.String("driver", cfg.Database.Driver),
			zap.Duration("execution_time", time.Since(start)),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(exportCmd)
}

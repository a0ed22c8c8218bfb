package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/parcelhq/shipment-warehouse/internal/db"
	"github.com/parcelhq/shipment-warehouse/internal/logging"
	"github.com/parcelhq/shipment-warehouse/internal/pipeline"
	"github.com/parcelhq/shipment-warehouse/internal/warehouse"
)

var initDBDropExisting bool

var initDBCmd = &cobra.Command{
	Use:   "initdb",
	Short: "Create the star schema without loading data",
	Long: `Create the warehouse star schema (dimension and fact tables) in the
target database without running the pipeline.

Example:
  shipment-warehouse initdb --connection "postgres://..."`,
	RunE: runInitDB,
}

func init() {
	initDBCmd.Flags().BoolVar(&initDBDropExisting, "drop-existing", false,
		"drop the existing star schema before recreating it")
}

func runInitDB(cmd *cobra.Command, args []string) error {
	if initDBDropExisting {
		cfg.InitDB.DropExisting = true
	}

	if err := cfg.ValidateInitDB(); err != nil {
		return pipeline.NewError(pipeline.KindConfig, err)
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.Connection)
	if err != nil {
		return pipeline.NewError(pipeline.KindConnection, err)
	}
	defer pool.Close()

	store := warehouse.NewStore(pool, cfg.Load.BatchSize)

	if cfg.InitDB.DropExisting {
		logging.Info().Msg("Dropping existing schema")
		if err := store.DropSchema(ctx); err != nil {
			return pipeline.NewError(pipeline.KindSchema, err)
		}
		if err := db.DropMetadata(ctx, pool); err != nil {
			logging.Debug().Err(err).Msg("No metadata table to drop")
		}
	}

	logging.Info().Msg("Creating schema")
	if err := store.CreateSchema(ctx); err != nil {
		return pipeline.NewError(pipeline.KindSchema, err)
	}

	logging.Info().Msg("Schema initialization complete")
	return nil
}

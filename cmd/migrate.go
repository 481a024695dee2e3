package main

import (
	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-SchedulingService/migrations"
)

func newMigrateCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, log, db, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer log.Close()
			defer db.Close()

			applied, err := migrations.Up(cmd.Context(), db, log)
			if err != nil {
				log.Error("Migration failed: %v", err)
				return err
			}
			log.Info("Migrations complete: %d applied", applied)
			return nil
		},
	}
}

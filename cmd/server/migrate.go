package main

import (
	"github.com/spf13/cobra"
)

func (a *app) newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, db, log, err := a.load(cmd.Context(), "migrate")
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				log.Err(err).Msg("error applying migrations")
				return err
			}

			log.Info().Str("dialect", db.Dialect()).Msg("migrations applied")
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-builder/internal/adapter"
	"github.com/MKhiriev/go-deck-builder/internal/handler"
	"github.com/MKhiriev/go-deck-builder/internal/server"
	"github.com/MKhiriev/go-deck-builder/internal/service"
	"github.com/MKhiriev/go-deck-builder/internal/session"
	"github.com/MKhiriev/go-deck-builder/internal/store"
)

func (a *app) newServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Migrate the database and serve HTTP until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			cfg, db, log, err := a.load(ctx, "server")
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				log.Err(err).Msg("error applying migrations")
				return err
			}

			catalog, err := adapter.NewHTTPCardCatalog(cfg.Adapter, log)
			if err != nil {
				log.Err(err).Msg("error creating card catalog")
				return err
			}
			previews, err := adapter.NewCachedCatalog(catalog, cfg.Adapter.CacheSize)
			if err != nil {
				return fmt.Errorf("error creating catalog cache: %w", err)
			}

			services, err := service.NewServices(store.NewStorages(db, log), catalog, previews, *cfg, a.buildInfo, log)
			if err != nil {
				log.Err(err).Msg("error creating services")
				return err
			}

			sessions, err := session.NewCookieStore(cfg.App)
			if err != nil {
				log.Err(err).Msg("error creating session store")
				return err
			}

			handlers, err := handler.NewHandlers(services, sessions, cfg.Server, log)
			if err != nil {
				log.Err(err).Msg("error creating handlers")
				return err
			}

			srv, err := server.NewServer(handlers, cfg.Server, log)
			if err != nil {
				log.Err(err).Msg("error creating server")
				return err
			}

			return srv.RunServer(ctx)
		},
	}
}

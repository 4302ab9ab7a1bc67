package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-deck-builder/internal/config"
	"github.com/MKhiriev/go-deck-builder/internal/logger"
	"github.com/MKhiriev/go-deck-builder/internal/store"
	"github.com/MKhiriev/go-deck-builder/models"
)

// app carries what every subcommand needs after flags are parsed.
type app struct {
	buildInfo models.AppBuildInfo
	flags     *config.Flags
}

func newRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	a := &app{buildInfo: buildInfo}

	root := &cobra.Command{
		Use:           "deckbuilder",
		Short:         "Trading card deck builder server",
		Long:          "deckbuilder serves the deck builder web application backed by a relational store and an external card catalog.",
		Version:       buildInfo.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	a.flags = config.RegisterFlags(root.PersistentFlags())

	serve := a.newServeCommand()
	root.AddCommand(serve, a.newMigrateCommand())

	// Running the binary without a subcommand serves.
	root.RunE = serve.RunE

	return root
}

// load resolves the configuration and opens the database.
func (a *app) load(ctx context.Context, role string) (*config.StructuredConfig, *store.DB, *logger.Logger, error) {
	cfg, err := config.GetStructuredConfig(a.flags)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewLogger(role, cfg.App.LogLevel)
	log.Info().Str("build", a.buildInfo.String()).Msg("starting")

	db, err := store.NewDB(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Err(err).Msg("error connecting to database")
		return nil, nil, nil, fmt.Errorf("error connecting to database: %w", err)
	}

	return cfg, db, log, nil
}

package main

import (
	"context"
	"os"
	"time"

	"github.com/pathway-infinity/pathway-api/config"
	"github.com/pathway-infinity/pathway-api/database"
	"github.com/pathway-infinity/pathway-api/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

// @title Pathway Infinity API
// @version 1.0
// @description Career-pathway quiz backend: school catalog, quiz recommendations, saved results and sessions.
// @contact.name Pathway Infinity
// @license.name MIT
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "pathway",
		Short:        "Pathway Infinity API server",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Run migrations and start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe()
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate()
		},
	})
	return root
}

func runServe() error {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	app := fx.New(
		fx.Supply(cfg),
		appModule,
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(RegisterLifecycle),
	)

	startCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := app.Start(startCtx); err != nil {
		log.Error().Err(err).Msg("Failed to start application")
		return err
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")

	stopCtx, stopCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer stopCancel()
	return app.Stop(stopCtx)
}

func runMigrate() error {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}
	logger.Init(cfg.Log.Level, cfg.Log.Format)

	db, err := database.NewDatabase(cfg)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database")
		return err
	}
	defer func() { _ = database.Close(db) }()
	return database.AutoMigrate(db)
}

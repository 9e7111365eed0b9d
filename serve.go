// serve.go
//
// `ciphermind serve` — starts the HTTP API: loads config, opens SQLite,
// applies migrations, and serves the chi router.

package main

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/ciphermind/go-server/internal/config"
	"github.com/ciphermind/go-server/internal/httpserver"
	"github.com/ciphermind/go-server/internal/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the CipherMind HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
			zerolog.SetGlobalLevel(lvl)
		}

		db, err := openDB(cfg.DBPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open database")
		}
		defer db.Close()
		if err := migrate(db); err != nil {
			log.Fatal().Err(err).Msg("apply migrations")
		}

		mem := store.NewMemoryStore()
		srv := httpserver.New(mem, db, cfg)
		log.Info().Str("port", cfg.Port).Msg("starting ciphermind server")
		if err := srv.Start(":" + cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("server exited")
		}
		return nil
	},
}

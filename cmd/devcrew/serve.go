package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/devcrew/internal/catalog"
	"github.com/ShayCichocki/devcrew/internal/config"
	"github.com/ShayCichocki/devcrew/internal/logger"
	"github.com/ShayCichocki/devcrew/internal/orchestrator"
	"github.com/ShayCichocki/devcrew/internal/server"
	"github.com/ShayCichocki/devcrew/internal/state"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Listen port (overrides config)")
}

func runServe() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	logger.Init(cfg.Log.Level, cfg.Log.Pretty)

	cat := catalog.Default()
	if cfg.Catalog.Dir != "" {
		cat, err = catalog.Load(cfg.Catalog.Dir)
		if err != nil {
			return fmt.Errorf("load catalog: %w", err)
		}
	}

	var opts []orchestrator.Option
	if cfg.Journal.Enabled {
		journal, err := state.Open(cfg.Journal.Path)
		if err != nil {
			// The journal is an audit aid; startup proceeds without it.
			logger.Logger.Warn().Err(err).Msg("journal unavailable")
		} else {
			defer journal.Close()
			opts = append(opts, orchestrator.WithJournal(journal))
			logger.Logger.Info().Str("path", journal.Path()).Msg("journal enabled")
		}
	}

	orch := orchestrator.New(cat, opts...)
	return server.New(cfg, orch).Start()
}

// cmd/seed — loads the built-in common supplements into the store.
// Idempotent: running it twice leaves one row per supplement.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplementdb/internal/adapter"
	"supplementdb/internal/catalog"
	"supplementdb/internal/config"
	"supplementdb/internal/infra"
	"supplementdb/internal/repository"
	"supplementdb/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ingestor := service.NewIngestor(repository.NewSupplementRepository(db), catalog.Default())
	report, err := ingestor.Run(ctx, adapter.NewSeed())
	if report != nil {
		fmt.Print(report.Summary())
	}
	if err != nil {
		log.Fatal().Err(err).Msg("seed aborted")
	}
}

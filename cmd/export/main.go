// cmd/export — dumps the supplement store into one of its distribution
// formats: a JSON array, a generated Go source file with the database
// embedded, or a printable PDF fact report.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplementdb/internal/config"
	"supplementdb/internal/infra"
	"supplementdb/internal/repository"
	"supplementdb/internal/service"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	var (
		format = flag.String("format", "json", "output format: json | go | pdf")
		out    = flag.String("out", "", "output path (defaults to EXPORT_PATH / REPORT_PATH)")
		pkg    = flag.String("pkg", "preloaded", "package name for the generated Go source (go format)")
		title  = flag.String("title", "Supplement Database", "document title (pdf format)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	svc := service.NewExportService(repository.NewSupplementRepository(db))

	path := *out
	if path == "" {
		path = cfg.ExportPath
		if *format == "pdf" {
			path = cfg.ReportPath
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var count int
	switch *format {
	case "json", "go":
		f, err := os.Create(path)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot create output file")
		}
		defer f.Close()

		if *format == "json" {
			count, err = svc.WriteJSON(ctx, f)
		} else {
			count, err = svc.WriteGoSource(ctx, f, *pkg)
		}
		if err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
	case "pdf":
		count, err = svc.WritePDF(ctx, path, *title)
		if err != nil {
			log.Fatal().Err(err).Msg("export failed")
		}
	default:
		log.Fatal().Str("format", *format).Msg("unknown format")
	}

	log.Info().Int("supplements", count).Str("path", path).Str("format", *format).Msg("export complete")
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
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

	var (
		sourceName = flag.String("source", catalog.SourceOpenFoodFacts,
			"source to ingest: open_food_facts | usda | nih_dsld | spoonacular | open_food_facts_bulk")
		barcodeList = flag.String("barcodes", "", "comma-separated barcodes (open_food_facts, usda, spoonacular)")
		queryList   = flag.String("queries", "vitamin d,omega 3,multivitamin,probiotic,calcium",
			"comma-separated search queries (usda, nih_dsld, spoonacular)")
		csvPath = flag.String("csv", "", "path to a bulk CSV dump (open_food_facts_bulk)")
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
	repo := repository.NewSupplementRepository(db)

	var cache *infra.VendorCache
	if cfg.RedisURL != "" {
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		cache = infra.NewVendorCache(rdb, time.Duration(cfg.CacheTTLHours)*time.Hour)
	}
	client := infra.NewVendorClient(time.Duration(cfg.HTTPTimeoutSeconds)*time.Second, cfg.UserAgent, cache)

	src, err := buildSource(cfg, client, *sourceName, splitList(*barcodeList), splitList(*queryList), *csvPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot build source")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ingestor := service.NewIngestor(repo, catalog.Default())
	report, runErr := ingestor.Run(ctx, src)
	if report != nil {
		fmt.Print(report.Summary())
		sendSummary(cfg, report)
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("ingest aborted")
	}
}

func buildSource(cfg *config.Config, client *infra.VendorClient, name string, barcodes, queries []string, csvPath string) (adapter.Source, error) {
	switch name {
	case catalog.SourceOpenFoodFacts:
		if len(barcodes) == 0 {
			return nil, fmt.Errorf("open_food_facts needs -barcodes")
		}
		return adapter.NewOpenFoodFacts(client, cfg.OFFBaseURL, barcodes), nil
	case catalog.SourceUSDA:
		if len(barcodes) > 0 {
			return adapter.NewUSDABarcodes(client, cfg.USDABaseURL, cfg.USDAAPIKey, barcodes), nil
		}
		return adapter.NewUSDA(client, cfg.USDABaseURL, cfg.USDAAPIKey, queries), nil
	case catalog.SourceNIH:
		return adapter.NewNIH(client, cfg.NIHBaseURL, queries), nil
	case catalog.SourceSpoonacular:
		if cfg.SpoonacularAPIKey == "" {
			return nil, fmt.Errorf("spoonacular needs SPOONACULAR_API_KEY")
		}
		if len(barcodes) > 0 {
			return adapter.NewSpoonacular(client, cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey, barcodes), nil
		}
		return adapter.NewSpoonacularSearch(client, cfg.SpoonacularBaseURL, cfg.SpoonacularAPIKey, queries), nil
	case catalog.SourceBulkCSV:
		if csvPath == "" {
			return nil, fmt.Errorf("open_food_facts_bulk needs -csv")
		}
		f, err := os.Open(csvPath)
		if err != nil {
			return nil, err
		}
		return adapter.NewBulkCSV(f), nil
	default:
		return nil, fmt.Errorf("unknown source %q", name)
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func sendSummary(cfg *config.Config, report *service.IngestReport) {
	mailer := infra.NewMailer(cfg)
	if !mailer.Enabled() || cfg.SummaryMailTo == "" {
		return
	}
	subject := fmt.Sprintf("Ingest summary: %s (%d accepted)", report.Source, report.Accepted)
	if err := mailer.SendRunSummary(cfg.SummaryMailTo, subject, report.Summary(), ""); err != nil {
		log.Error().Err(err).Msg("summary mail failed")
	}
}

package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rs/zerolog/log"

	"lendingtree_reviews/internal/adapters/lendingtree"
	"lendingtree_reviews/internal/adapters/observability"
	"lendingtree_reviews/internal/app"
	"lendingtree_reviews/internal/domain"
	"lendingtree_reviews/internal/shared"
)

// One-shot collector: takes a business profile URL, collects every
// review, and writes the JSON result to stdout.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	// initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	if len(os.Args) != 2 {
		log.Fatal().Msg("usage: scraper <profile-url>")
	}
	biz, err := lendingtree.ParseArgs(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("invalid profile url")
	}

	log.Info().
		Str("slug", biz.Slug).
		Int64("business_id", biz.ID).
		Int("workers", cfg.Workers).
		Msg("collection starting")

	client := lendingtree.New(cfg.ScrapeBase, cfg.RPS, cfg.ReqTimeout)
	collector := app.NewCollector(client, cfg.Workers, cfg.BatchTimeout)

	reviews, err := collector.CollectAll(ctx, biz)
	if err != nil {
		log.Fatal().Err(err).Msg("collection failed")
	}
	log.Info().Int("reviews", len(reviews)).Msg("collection completed")

	if reviews == nil {
		reviews = []domain.Review{}
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(map[string][]domain.Review{"data": reviews}); err != nil {
		log.Fatal().Err(err).Msg("encode result failed")
	}
}

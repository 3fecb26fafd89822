package main

import (
	"net/http"

	"github.com/rs/zerolog/log"

	server "lendingtree_reviews/internal/adapters/http_server"
	"lendingtree_reviews/internal/adapters/lendingtree"
	"lendingtree_reviews/internal/adapters/observability"
	"lendingtree_reviews/internal/app"
	"lendingtree_reviews/internal/shared"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv)

	observability.Serve()

	// deps
	client := lendingtree.New(cfg.ScrapeBase, cfg.RPS, cfg.ReqTimeout)
	collector := app.NewCollector(client, cfg.Workers, cfg.BatchTimeout)

	// http
	srv := server.New()
	reg := observability.InitRegistry()
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{C: collector})

	log.Info().Str("addr", cfg.HTTPAddr).Str("base", cfg.ScrapeBase).Msg("API listening")
	httpSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: srv.Mux()}

	if err := httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

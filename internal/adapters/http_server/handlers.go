// internal/adapters/http_server/handlers.go
package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"lendingtree_reviews/internal/adapters/lendingtree"
	"lendingtree_reviews/internal/app"
	"lendingtree_reviews/internal/domain"
)

type Handlers struct{ C *app.Collector }

type scrapeRequest struct {
	URL *string `json:"url"`
}

type scrapeResponse struct {
	Data []domain.Review `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/", h.scrapeReviews)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func (h *Handlers) scrapeReviews(w http.ResponseWriter, r *http.Request) {
	var req scrapeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be JSON")
		return
	}
	if req.URL == nil {
		writeError(w, http.StatusBadRequest, "URL to scrape argument is missing")
		return
	}

	biz, err := lendingtree.ParseArgs(*req.URL)
	if err != nil {
		writeError(w, http.StatusBadRequest, "URL to scrape argument is not valid")
		return
	}

	reviews, err := h.C.CollectAll(r.Context(), biz)
	if err != nil {
		log.Error().Err(err).
			Str("slug", biz.Slug).
			Int64("business_id", biz.ID).
			Msg("review collection failed")
		status := http.StatusInternalServerError
		var ce *domain.CommunicationError
		if errors.As(err, &ce) {
			status = http.StatusBadGateway
		}
		writeError(w, status, err.Error())
		return
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}
	writeJSON(w, http.StatusOK, scrapeResponse{Data: reviews})
}

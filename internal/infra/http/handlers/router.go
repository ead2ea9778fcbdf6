package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/ligue-outreach/internal/infra/http/middleware"
)

type Router struct {
	Campaign   *CampaignHandler
	Enrichment *EnrichmentHandler
	Prompt     *PromptHandler
	Health     *HealthHandler

	// GenerationLimiter guards POST /campaigns. Nil disables limiting.
	GenerationLimiter *RateLimiter
}

func NewRouter(rt Router) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/leads/enrich", rt.Enrichment.Handle)
	r.Post("/prompts/{kind}", rt.Prompt.Handle)

	r.Route("/campaigns", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if rt.GenerationLimiter != nil {
				r.Use(rt.GenerationLimiter.Limit)
			}
			r.Use(chimw.Timeout(3 * time.Minute))
			r.Post("/", rt.Campaign.HandleCreate)
		})
		r.Get("/{id}", rt.Campaign.HandleGet)
	})

	return r
}

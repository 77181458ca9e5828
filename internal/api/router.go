package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"sheetregistry/internal/config"
	"sheetregistry/internal/middleware"
)

// NewRouter assembles the chi router: common middleware, public login and
// docs endpoints, and the bearer-protected data surface.
func NewRouter(cfg *config.Config, h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RateLimiter(middleware.RateLimitConfig{
		RequestsPerSecond: cfg.RateLimitRPS,
		Burst:             cfg.RateLimitBurst,
	}))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type", "X-Request-ID"},
	}))

	// Public endpoints
	r.Get("/healthz", h.handleHealth)
	r.Post("/auth/google", h.handleGoogleLogin)

	r.Get("/openapi.json", func(w http.ResponseWriter, _ *http.Request) {
		doc, err := OpenAPIJSON()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(doc)
	})

	r.Get("/docs", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		fmt.Fprint(w, `<!DOCTYPE html>
<html>
<head>
    <title>Registry API</title>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/@scalar/api-reference@1.44.16/dist/style.min.css" />
</head>
<body>
    <script id="api-reference" data-url="/openapi.json"></script>
    <script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference@1.44.16/dist/browser/standalone.min.js"></script>
</body>
</html>`)
	})

	// Session-protected endpoints. The odd shapes (/data/entry for create,
	// PUT /data/{id} for delete) are part of the published contract.
	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth([]byte(cfg.Auth.SessionSecret)))
		r.Post("/authenticate", h.handleAuthenticate)
		r.Get("/data", h.handleListRecords)
		r.Post("/data/entry", h.handleCreateRecord)
		r.Put("/dataupdate/{id}", h.handleUpdateRecord)
		r.Put("/data/{id}", h.handleDeleteRecord)
	})

	return r
}

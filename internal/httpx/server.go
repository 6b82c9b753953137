package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/archignome/tgboy/internal/orders"
	"github.com/archignome/tgboy/internal/storage"
)

func NewRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))
	return r
}

// RegisterHealth exposes the hosting health check: a cheap probe against
// the orders table, reported as JSON.
func RegisterHealth(r *chi.Mux, gw storage.Gateway) {
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), 3*time.Second)
		defer cancel()

		if _, err := gw.SelectAll(ctx, orders.Table, storage.SelectOpts{Limit: 1}); err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"status":  "error",
				"message": "Database connection failed",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"status":             "ok",
			"message":            "VPN Bot Service is running!",
			"databaseConnection": "connected",
		})
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

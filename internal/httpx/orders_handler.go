package httpx

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/archignome/tgboy/internal/catalog"
	"github.com/archignome/tgboy/internal/orders"
	"github.com/archignome/tgboy/internal/storage"
)

// AdminHandler is the small operator-facing API next to the bot: create and
// inspect orders, list the catalog. Order creation tolerates both historic
// field-naming conventions.
type AdminHandler struct {
	Orders  *orders.Service
	Catalog *catalog.Service
}

func (h *AdminHandler) Register(r *chi.Mux) {
	r.Post("/orders", h.createOrder)
	r.Get("/orders/{id}", h.getOrder)
	r.Get("/plans", h.listPlans)
}

type orderResp struct {
	ID            string `json:"id"`
	UserID        string `json:"userid"`
	Username      string `json:"username"`
	ConfigID      string `json:"configid"`
	ConfigName    string `json:"configname"`
	ConfigDetails string `json:"configdetails"`
	Price         int    `json:"price"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdat"`
	UpdatedAt     string `json:"updatedat"`
}

func toOrderResp(o orders.Order) orderResp {
	return orderResp{
		ID:            o.ID,
		UserID:        o.UserID,
		Username:      o.Username,
		ConfigID:      o.ConfigID,
		ConfigName:    o.ConfigName,
		ConfigDetails: o.ConfigDetails,
		Price:         o.PriceCents,
		Status:        o.Status.Wire(),
		CreatedAt:     o.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:     o.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func (h *AdminHandler) createOrder(w http.ResponseWriter, r *http.Request) {
	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	order, err := h.Orders.CreateFromRecord(r.Context(), rec)
	switch {
	case storage.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage failure"})
	default:
		writeJSON(w, http.StatusCreated, toOrderResp(order))
	}
}

func (h *AdminHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	order, err := h.Orders.Get(r.Context(), id)
	switch {
	case storage.IsNotFound(err):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	case storage.IsValidation(err):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case err != nil:
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage failure"})
	default:
		writeJSON(w, http.StatusOK, toOrderResp(order))
	}
}

type planResp struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Price     int      `json:"price"`
	Details   string   `json:"details,omitempty"`
	Locations []string `json:"locations,omitempty"`
}

func (h *AdminHandler) listPlans(w http.ResponseWriter, r *http.Request) {
	plans, err := h.Catalog.List(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "storage failure"})
		return
	}
	out := make([]planResp, 0, len(plans))
	for _, p := range plans {
		out = append(out, planResp{
			ID: p.ID, Name: p.Name, Price: p.PriceCents,
			Details: p.Details, Locations: p.Locations,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

package stock

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Handler exposes read endpoints for warehouse and shop inventory.
type Handler struct{ service Service }

func NewHandler(service Service) *Handler { return &Handler{service: service} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/stock", func(r chi.Router) {
		r.Get("/warehouse", h.warehouseLevels)
		r.Get("/shop", h.shopLevels)
		r.Get("/counts", h.counts)
	})
}

func (h *Handler) warehouseLevels(w http.ResponseWriter, r *http.Request) {
	levels, err := h.service.WarehouseLevels(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, levels)
}

func (h *Handler) shopLevels(w http.ResponseWriter, r *http.Request) {
	shop, err := h.service.Shop(r.Context())
	if err != nil {
		if errors.Is(err, ErrNoShop) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, shop)
}

func (h *Handler) counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Counts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, counts)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

package shipment

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// Handler exposes shipment read endpoints. Mutations go through the ops
// driver so they follow the validate/optimistic/persist/re-fetch cycle.
type Handler struct {
	service Service
	tracker *Tracker
}

func NewHandler(service Service, tracker *Tracker) *Handler {
	return &Handler{service: service, tracker: tracker}
}

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/shipments", func(r chi.Router) {
		r.Get("/", h.listRecent) // ?limit=...
		r.Get("/incoming", h.listIncoming)
		r.Get("/tracking", h.trackingState)
		r.Get("/{id}", h.getShipment)
	})
}

func (h *Handler) listRecent(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	shipments, err := h.service.Recent(r.Context(), limit)
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, shipments)
}

func (h *Handler) listIncoming(w http.ResponseWriter, r *http.Request) {
	shipments, err := h.service.Incoming(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, shipments)
}

func (h *Handler) trackingState(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.tracker.State())
}

func (h *Handler) getShipment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	shp, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
			return
		}
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, shp)
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

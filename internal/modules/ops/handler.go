package ops

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Kishansuresh/pds-track/internal/modules/stock"
)

// Handler exposes the dashboard action endpoints. Every mutation goes
// through the driver so it follows the validate/optimistic/persist/re-fetch
// cycle and returns the refreshed view snapshot.
type Handler struct{ driver *Driver }

func NewHandler(driver *Driver) *Handler { return &Handler{driver: driver} }

func (h *Handler) RegisterRoutes(r *chi.Mux) {
	r.Route("/api/v1/ops", func(r chi.Router) {
		r.Post("/shipments/dispatch", h.dispatchShipment)
		r.Post("/shipments/{id}/accept", h.acceptShipment)
		r.Post("/shipments/{id}/deliver", h.markDelivered)
		r.Post("/shipments/{id}/track", h.startTracking) // ?role=...
		r.Delete("/tracking", h.stopTracking)
		r.Post("/sales", h.recordSale)
		r.Post("/reservations/{id}/approve", h.approveReservation)
		r.Post("/prebook", h.requestPrebook)
		r.Post("/complaints", h.fileComplaint)
		r.Post("/complaints/{id}/resolve", h.resolveComplaint)
	})
	r.Get("/api/v1/dashboard", h.dashboard)
	r.Get("/api/v1/dashboard/citizen", h.citizen)
}

// kgField accepts both JSON numbers and form-style strings; anything
// non-numeric coerces to 0.
type kgField struct{ value float64 }

func (f *kgField) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		f.value = n
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		f.value = stock.ParseAmount(s)
		return nil
	}
	f.value = 0
	return nil
}

func (h *Handler) dispatchShipment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		RiceKg  kgField `json:"rice_kg"`
		WheatKg kgField `json:"wheat_kg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	snap, err := h.driver.DispatchShipment(r.Context(), body.RiceKg.value, body.WheatKg.value)
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) acceptShipment(w http.ResponseWriter, r *http.Request) {
	snap, err := h.driver.AcceptShipment(r.Context(), chi.URLParam(r, "id"))
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) markDelivered(w http.ResponseWriter, r *http.Request) {
	snap, err := h.driver.MarkDelivered(r.Context(), chi.URLParam(r, "id"))
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) startTracking(w http.ResponseWriter, r *http.Request) {
	role := Role(r.URL.Query().Get("role"))
	if role == "" {
		role = RoleDealer
	}
	snap, err := h.driver.StartTracking(r.Context(), role, chi.URLParam(r, "id"))
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) stopTracking(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, h.driver.StopTracking())
}

func (h *Handler) recordSale(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Customer     string  `json:"customer"`
		AmountRupees kgField `json:"amount_rupees"`
		RiceKg       kgField `json:"rice_kg"`
		WheatKg      kgField `json:"wheat_kg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	snap, err := h.driver.RecordSale(r.Context(), body.Customer,
		body.AmountRupees.value, body.RiceKg.value, body.WheatKg.value)
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) approveReservation(w http.ResponseWriter, r *http.Request) {
	snap, err := h.driver.ApproveReservation(r.Context(), chi.URLParam(r, "id"))
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) requestPrebook(w http.ResponseWriter, r *http.Request) {
	var body struct {
		PickupDate string `json:"pickup_date"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	snap, err := h.driver.RequestPrebook(r.Context(), body.PickupDate)
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) fileComplaint(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	snap, err := h.driver.FileComplaint(r.Context(), body.Name, body.Text)
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) resolveComplaint(w http.ResponseWriter, r *http.Request) {
	snap, err := h.driver.ResolveComplaint(r.Context(), chi.URLParam(r, "id"))
	h.respondSnapshot(w, snap, err)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	if err := h.driver.Reload(r.Context()); err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, h.driver.Snapshot())
}

func (h *Handler) citizen(w http.ResponseWriter, r *http.Request) {
	view, err := h.driver.Citizen(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, view)
}

// respondSnapshot maps the driver's error taxonomy onto HTTP statuses. A
// persistence failure still carries the re-fetched snapshot so the caller
// sees the authoritative state.
func (h *Handler) respondSnapshot(w http.ResponseWriter, snap Snapshot, err error) {
	var (
		verr *ValidationError
		nerr *NotFoundError
		perr *PersistenceError
	)
	switch {
	case err == nil:
		respond(w, http.StatusOK, snap)
	case errors.As(err, &verr):
		respond(w, http.StatusUnprocessableEntity, map[string]string{"error": verr.Reason})
	case errors.As(err, &nerr):
		respond(w, http.StatusNotFound, map[string]string{"error": nerr.Error()})
	case errors.As(err, &perr):
		respond(w, http.StatusBadGateway, map[string]interface{}{
			"error":    perr.Error(),
			"snapshot": snap,
		})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

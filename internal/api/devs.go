package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/freebies/internal/store"
)

// DevsHandler handles dev endpoints.
type DevsHandler struct {
	DB *sql.DB
}

type createDevRequest struct {
	Name string `json:"name"`
}

type receivedResponse struct {
	Item     string `json:"item"`
	Received bool   `json:"received"`
}

// List handles GET /api/devs.
func (h *DevsHandler) List(w http.ResponseWriter, r *http.Request) {
	devs, err := store.ListDevs(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list devs")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(devs))
}

// Create handles POST /api/devs.
func (h *DevsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDevRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	dev, err := store.CreateDev(r.Context(), h.DB, req.Name)
	if err != nil {
		storeError(w, err, "create dev")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("dev created", "user", claims.Username, "dev", dev.Name, "id", dev.ID)
	jsonResponse(w, http.StatusCreated, dev)
}

// Get handles GET /api/devs/{id}.
func (h *DevsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "dev")
	if !ok {
		return
	}

	dev, err := store.GetDev(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get dev")
		return
	}
	if dev == nil {
		jsonError(w, http.StatusNotFound, "dev not found")
		return
	}
	jsonResponse(w, http.StatusOK, dev)
}

// Freebies handles GET /api/devs/{id}/freebies.
func (h *DevsHandler) Freebies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "dev")
	if !ok {
		return
	}

	freebies, err := store.ListDevFreebies(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "list dev freebies")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(freebies))
}

// Companies handles GET /api/devs/{id}/companies.
func (h *DevsHandler) Companies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "dev")
	if !ok {
		return
	}

	companies, err := store.ListDevCompanies(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "list dev companies")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(companies))
}

// Received handles GET /api/devs/{id}/received?item=<name>.
func (h *DevsHandler) Received(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "dev")
	if !ok {
		return
	}

	item := r.URL.Query().Get("item")
	if item == "" {
		jsonError(w, http.StatusBadRequest, "item required")
		return
	}

	received, err := store.DevHasItem(r.Context(), h.DB, id, item)
	if err != nil {
		storeError(w, err, "check dev item")
		return
	}
	jsonResponse(w, http.StatusOK, receivedResponse{Item: item, Received: received})
}

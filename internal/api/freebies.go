package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/freebies/internal/model"
	"github.com/erazemk/freebies/internal/store"
)

// FreebiesHandler handles freebie endpoints.
type FreebiesHandler struct {
	DB *sql.DB
}

type freebieResponse struct {
	*model.Freebie
	Description string `json:"description"`
}

type transferRequest struct {
	FromDevID int64 `json:"from_dev_id"`
	ToDevID   int64 `json:"to_dev_id"`
}

type transferResponse struct {
	Transferred bool           `json:"transferred"`
	Freebie     *model.Freebie `json:"freebie"`
}

// List handles GET /api/freebies.
func (h *FreebiesHandler) List(w http.ResponseWriter, r *http.Request) {
	freebies, err := store.ListFreebies(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list freebies")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(freebies))
}

// Get handles GET /api/freebies/{id}.
func (h *FreebiesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "freebie")
	if !ok {
		return
	}

	freebie, err := store.GetFreebie(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get freebie")
		return
	}
	if freebie == nil {
		jsonError(w, http.StatusNotFound, "freebie not found")
		return
	}
	jsonResponse(w, http.StatusOK, freebieResponse{Freebie: freebie, Description: freebie.Describe()})
}

// Transfer handles POST /api/freebies/{id}/transfer. A freebie that does not
// belong to from_dev_id is left alone and reported with transferred=false.
func (h *FreebiesHandler) Transfer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "freebie")
	if !ok {
		return
	}

	var req transferRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.FromDevID <= 0 || req.ToDevID <= 0 {
		jsonError(w, http.StatusBadRequest, "from_dev_id and to_dev_id are required and must be positive")
		return
	}

	transferred, err := store.TransferFreebie(r.Context(), h.DB, req.FromDevID, req.ToDevID, id)
	if err != nil {
		storeError(w, err, "transfer freebie")
		return
	}

	freebie, err := store.GetFreebie(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get freebie")
		return
	}
	// The ledger may have been reset since the transfer committed.
	if freebie == nil {
		jsonError(w, http.StatusNotFound, "freebie not found")
		return
	}

	claims := GetClaims(r.Context())
	if transferred {
		slog.Info("freebie transferred", "user", claims.Username,
			"freebie", id, "from", req.FromDevID, "to", req.ToDevID)
	} else {
		slog.Warn("freebie transfer refused", "user", claims.Username,
			"freebie", id, "from", req.FromDevID, "owner", freebie.DevID)
	}
	jsonResponse(w, http.StatusOK, transferResponse{Transferred: transferred, Freebie: freebie})
}

package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/erazemk/freebies/internal/store"
)

// CompaniesHandler handles company endpoints.
type CompaniesHandler struct {
	DB *sql.DB
}

type createCompanyRequest struct {
	Name         string `json:"name"`
	FoundingYear int    `json:"founding_year"`
}

type issueFreebieRequest struct {
	DevID    int64  `json:"dev_id"`
	ItemName string `json:"item_name"`
	Value    int    `json:"value"`
}

// List handles GET /api/companies.
func (h *CompaniesHandler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := store.ListCompanies(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "list companies")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(companies))
}

// Create handles POST /api/companies.
func (h *CompaniesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCompanyRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	company, err := store.CreateCompany(r.Context(), h.DB, req.Name, req.FoundingYear)
	if err != nil {
		storeError(w, err, "create company")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("company created", "user", claims.Username, "company", company.Name, "id", company.ID)
	jsonResponse(w, http.StatusCreated, company)
}

// Get handles GET /api/companies/{id}.
func (h *CompaniesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "company")
	if !ok {
		return
	}

	company, err := store.GetCompany(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "get company")
		return
	}
	if company == nil {
		jsonError(w, http.StatusNotFound, "company not found")
		return
	}
	jsonResponse(w, http.StatusOK, company)
}

// Oldest handles GET /api/companies/oldest. An empty ledger yields null.
func (h *CompaniesHandler) Oldest(w http.ResponseWriter, r *http.Request) {
	company, err := store.OldestCompany(r.Context(), h.DB)
	if err != nil {
		storeError(w, err, "get oldest company")
		return
	}
	jsonResponse(w, http.StatusOK, company)
}

// Freebies handles GET /api/companies/{id}/freebies.
func (h *CompaniesHandler) Freebies(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "company")
	if !ok {
		return
	}

	freebies, err := store.ListCompanyFreebies(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "list company freebies")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(freebies))
}

// Devs handles GET /api/companies/{id}/devs.
func (h *CompaniesHandler) Devs(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "company")
	if !ok {
		return
	}

	devs, err := store.ListCompanyDevs(r.Context(), h.DB, id)
	if err != nil {
		storeError(w, err, "list company devs")
		return
	}
	jsonResponse(w, http.StatusOK, orEmpty(devs))
}

// IssueFreebie handles POST /api/companies/{id}/freebies.
func (h *CompaniesHandler) IssueFreebie(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "company")
	if !ok {
		return
	}

	var req issueFreebieRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.DevID <= 0 || req.ItemName == "" {
		jsonError(w, http.StatusBadRequest, "dev_id and item_name required")
		return
	}

	freebie, err := store.IssueFreebie(r.Context(), h.DB, id, req.DevID, req.ItemName, req.Value)
	if err != nil {
		storeError(w, err, "issue freebie")
		return
	}

	claims := GetClaims(r.Context())
	slog.Info("freebie issued", "user", claims.Username,
		"item", freebie.ItemName, "company", freebie.CompanyName, "dev", freebie.DevName)
	jsonResponse(w, http.StatusCreated, freebie)
}

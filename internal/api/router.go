package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/freebies/internal/auth"
	"github.com/erazemk/freebies/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, signer *auth.Signer) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, Signer: signer}
	usersHandler := &UsersHandler{DB: db}
	companiesHandler := &CompaniesHandler{DB: db}
	devsHandler := &DevsHandler{DB: db}
	freebiesHandler := &FreebiesHandler{DB: db}

	authMW := AuthMiddleware(signer)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireClerk := RequireRole(model.RoleClerk)

	read := func(h http.HandlerFunc) http.Handler { return authMW(h) }
	write := func(h http.HandlerFunc) http.Handler { return authMW(requireClerk(h)) }
	admin := func(h http.HandlerFunc) http.Handler { return authMW(requireAdmin(h)) }

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("PUT /api/auth/password", read(authHandler.ChangePassword))

	// Users (admin only).
	mux.Handle("GET /api/users", admin(usersHandler.List))
	mux.Handle("POST /api/users", admin(usersHandler.Create))

	// Companies.
	mux.Handle("GET /api/companies", read(companiesHandler.List))
	mux.Handle("POST /api/companies", write(companiesHandler.Create))
	mux.Handle("GET /api/companies/oldest", read(companiesHandler.Oldest))
	mux.Handle("GET /api/companies/{id}", read(companiesHandler.Get))
	mux.Handle("GET /api/companies/{id}/freebies", read(companiesHandler.Freebies))
	mux.Handle("POST /api/companies/{id}/freebies", write(companiesHandler.IssueFreebie))
	mux.Handle("GET /api/companies/{id}/devs", read(companiesHandler.Devs))

	// Devs.
	mux.Handle("GET /api/devs", read(devsHandler.List))
	mux.Handle("POST /api/devs", write(devsHandler.Create))
	mux.Handle("GET /api/devs/{id}", read(devsHandler.Get))
	mux.Handle("GET /api/devs/{id}/freebies", read(devsHandler.Freebies))
	mux.Handle("GET /api/devs/{id}/companies", read(devsHandler.Companies))
	mux.Handle("GET /api/devs/{id}/received", read(devsHandler.Received))

	// Freebies.
	mux.Handle("GET /api/freebies", read(freebiesHandler.List))
	mux.Handle("GET /api/freebies/{id}", read(freebiesHandler.Get))
	mux.Handle("POST /api/freebies/{id}/transfer", write(freebiesHandler.Transfer))

	return mux
}

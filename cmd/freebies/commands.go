package main

import (
	"context"
	"crypto/rand"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/erazemk/freebies/internal/api"
	"github.com/erazemk/freebies/internal/auth"
	"github.com/erazemk/freebies/internal/config"
	"github.com/erazemk/freebies/internal/db"
	"github.com/erazemk/freebies/internal/model"
	"github.com/erazemk/freebies/internal/seed"
	"github.com/erazemk/freebies/internal/store"
)

// openDatabase opens the database and applies the schema and migrations.
func openDatabase(path string) (*sql.DB, error) {
	database, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(database); err != nil {
		database.Close()
		return nil, err
	}
	slog.Info("database ready", "path", path)
	return database, nil
}

func cmdServe(cfg *config.Config) error {
	database, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	ctx := context.Background()
	if err := ensureAdmin(ctx, database, cfg.AdminUser); err != nil {
		return err
	}

	// The signing secret lives in the database so tokens survive restarts.
	secret, err := store.GetJWTSecret(ctx, database)
	if err != nil {
		return err
	}

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           api.LoggingMiddleware(api.NewRouter(database, auth.NewSigner(secret))),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-quit
		slog.Info("shutdown signal received", "signal", sig.String())

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			slog.Error("server forced to shutdown", "error", err)
		}
	}()

	slog.Info("server started", "addr", cfg.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}

	slog.Info("server stopped, closing database")
	return nil
}

// ensureAdmin creates the admin account with a random password when the
// database has no users yet. The password is printed once.
func ensureAdmin(ctx context.Context, database *sql.DB, username string) error {
	users, err := store.ListUsers(ctx, database)
	if err != nil {
		return err
	}
	if len(users) > 0 {
		return nil
	}

	password, err := createUser(ctx, database, username, model.RoleAdmin)
	if err != nil {
		return fmt.Errorf("creating admin user: %w", err)
	}

	fmt.Println("Admin account created:")
	fmt.Printf("  Username: %s\n", username)
	fmt.Printf("  Password: %s\n", password)
	fmt.Println()
	fmt.Println("Save this password, it cannot be recovered.")
	fmt.Println()
	return nil
}

func cmdSeed(ctx context.Context, cfg *config.Config) error {
	database, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	counts, err := seed.Run(ctx, database)
	if err != nil {
		return err
	}

	fmt.Println("Database seeded successfully!")
	fmt.Printf("Created %d companies\n", counts.Companies)
	fmt.Printf("Created %d developers\n", counts.Devs)
	fmt.Printf("Created %d freebies\n", counts.Freebies)
	return nil
}

func cmdUserAdd(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("usage: freebies useradd <name> <role>")
	}
	username, role := args[0], args[1]
	if !model.ValidRole(role) {
		return fmt.Errorf("unknown role %q: want admin, clerk or viewer", role)
	}

	database, err := openDatabase(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	existing, err := store.GetUserByUsername(ctx, database, username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("user %q already exists", username)
	}

	password, err := createUser(ctx, database, username, role)
	if err != nil {
		return err
	}

	slog.Info("user created", "user", username, "role", role)
	fmt.Printf("  Username: %s\n", username)
	fmt.Printf("  Password: %s\n", password)
	return nil
}

// createUser stores a user with a freshly generated password and returns
// the password.
func createUser(ctx context.Context, database *sql.DB, username, role string) (string, error) {
	password, err := generatePassword(16)
	if err != nil {
		return "", fmt.Errorf("generating password: %w", err)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", err
	}

	if _, err := store.CreateUser(ctx, database, username, hash, role); err != nil {
		return "", err
	}
	return password, nil
}

// generatePassword creates a random password of the given length.
func generatePassword(length int) (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%&*"
	result := make([]byte, length)
	for i := range result {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		result[i] = charset[n.Int64()]
	}
	return string(result), nil
}

// cmd/main.go is the application entry point.
// It wires together all layers and starts the HTTP server.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/tablemap/tablemap/internal/database"
	"github.com/tablemap/tablemap/internal/handler"
	"github.com/tablemap/tablemap/internal/repository"
	"github.com/tablemap/tablemap/internal/service"
)

func main() {
	ctx := context.Background()

	// ── 1. Configuration ─────────────────────────────────────────────────
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	// ── 2. Connect to PostgreSQL and bootstrap the schema ────────────────
	pool, err := database.NewPool(ctx)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer pool.Close()
	if err := database.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	log.Println("✓ Connected to PostgreSQL")

	// ── 3. Wire up layers ────────────────────────────────────────────────
	eventRepo := repository.NewEventRepository(pool)
	tableRepo := repository.NewTableRepository(pool)
	iconRepo := repository.NewIconRepository(pool)
	partyRepo := repository.NewPartyRepository(pool)
	seatRepo := repository.NewSeatRepository(pool)

	eventSvc := service.NewEventService(eventRepo)
	layoutSvc := service.NewLayoutService(tableRepo, iconRepo, eventRepo)
	partySvc := service.NewPartyService(partyRepo, tableRepo, eventRepo)
	seatSvc := service.NewSeatService(seatRepo, tableRepo, partyRepo)
	guestSvc := service.NewGuestService(partyRepo, tableRepo, eventRepo)

	eventHandler := handler.NewEventHandler(eventSvc)
	layoutHandler := handler.NewLayoutHandler(layoutSvc)
	partyHandler := handler.NewPartyHandler(partySvc)
	seatHandler := handler.NewSeatHandler(seatSvc)
	guestHandler := handler.NewGuestHandler(guestSvc)

	// ── 4. Build the router ───────────────────────────────────────────────
	r := chi.NewRouter()

	// Global middleware stack
	r.Use(chimiddleware.Recoverer) // recover from panics, return 500
	r.Use(chimiddleware.RequestID) // attach request IDs
	r.Use(chimiddleware.RealIP)    // trust X-Forwarded-For
	r.Use(handler.Logger)          // structured access log
	r.Use(handler.CORS)            // permissive CORS for the editing UI

	// Health
	r.Get("/health", handler.HealthCheck)

	// Admin API: events own everything else.
	r.Route("/events", func(r chi.Router) {
		r.Post("/", eventHandler.Create)
		r.Get("/", eventHandler.List)
		r.Get("/{id}", eventHandler.Get)
		r.Put("/{id}", eventHandler.Update)
		r.Delete("/{id}", eventHandler.Delete)

		r.Post("/{id}/tables", layoutHandler.BulkCreateTables)
		r.Get("/{id}/tables", layoutHandler.ListTables)
		r.Delete("/{id}/layout", layoutHandler.ClearLayout)

		r.Post("/{id}/icons", layoutHandler.AddIcon)
		r.Get("/{id}/icons", layoutHandler.ListIcons)

		r.Post("/{id}/parties", partyHandler.Add)
		r.Get("/{id}/parties", partyHandler.List)
	})

	r.Route("/tables", func(r chi.Router) {
		r.Put("/{id}", layoutHandler.UpdateTable)
		r.Put("/{id}/position", layoutHandler.RepositionTable)
		r.Delete("/{id}", layoutHandler.DeleteTable)

		r.Post("/{id}/seats", seatHandler.Claim)
		r.Get("/{id}/seats", seatHandler.List)
		r.Delete("/{id}/seats/{seatNumber}", seatHandler.Release)
	})

	r.Route("/icons", func(r chi.Router) {
		r.Put("/{id}/position", layoutHandler.RepositionIcon)
		r.Delete("/{id}", layoutHandler.DeleteIcon)
	})

	r.Route("/parties", func(r chi.Router) {
		r.Put("/{id}", partyHandler.Update)
		r.Put("/{id}/table", partyHandler.Reassign)
		r.Delete("/{id}", partyHandler.Delete)
	})

	// Public, token-keyed guest API. Read-only by construction.
	r.Route("/guest", func(r chi.Router) {
		r.Get("/{token}", guestHandler.Resolve)
		r.Get("/{token}/layout", guestHandler.ResolveLayout)
		r.Get("/{token}/qr", guestHandler.QR)
	})

	// Static HTML – serve the web/ directory at the root.
	webFS := http.Dir("./web")
	r.Handle("/*", http.FileServer(webFS))

	// ── 5. Start server with graceful shutdown ────────────────────────────
	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Run in background goroutine so we can listen for shutdown signal.
	go func() {
		log.Printf("✓ Server listening on http://localhost:%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Block until SIGINT or SIGTERM.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down server…")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("graceful shutdown failed: %v", err)
	}
	log.Println("server stopped")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

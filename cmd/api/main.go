package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/smartlabo/labostock/internal/config"
	"github.com/smartlabo/labostock/internal/database"
	"github.com/smartlabo/labostock/internal/handlers"
	"github.com/smartlabo/labostock/internal/models"
	"github.com/smartlabo/labostock/internal/storage"
	"github.com/smartlabo/labostock/internal/store"
	"github.com/smartlabo/labostock/internal/websocket"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// 2. Open the persistence backend
	var adapter storage.Adapter
	var db *database.DB

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err = database.Connect(cfg.Database)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		adapter, err = storage.NewPostgresStore(db)
		if err != nil {
			log.Fatalf("Failed to init document storage: %v", err)
		}
	default:
		adapter, err = storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to init file storage: %v", err)
		}
	}

	// 3. Load (or seed) the application state
	st := store.Open(adapter)
	state := st.State()
	log.Printf("📋 State loaded: %d matériels, %d mouvements, %d commandes",
		len(state.Materials), len(state.Movements), len(state.Orders))
	if low := store.LowStock(state); len(low) > 0 {
		log.Printf("🔔 %d matériel(s) sous le seuil d'alerte", len(low))
	}

	// 4. Start the notification hub and wire it to the store
	hub := websocket.NewHub()
	go hub.Run()
	st.Subscribe(func(_ models.AppState, version uint64) {
		hub.NotifyState(version)
	})

	// 5. Set up HTTP router
	router := handlers.NewRouter(st, hub, cfg.FrontendDir)

	// 6. Start server with graceful shutdown
	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		log.Printf("🚀 LaboStock server starting on port %s [storage: %s]", cfg.Port, cfg.StorageDriver)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("\n⚠️  Received signal: %v. Shutting down gracefully...\n", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	if db != nil {
		log.Println("🛑 Closing database connection...")
		if err := db.Close(); err != nil {
			log.Printf("Database close error: %v", err)
		}
	}

	log.Println("✅ Shutdown complete")
}

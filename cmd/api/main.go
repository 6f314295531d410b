package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Techwolf78/Movie-App-Backend/internal/api/routes"
	"github.com/Techwolf78/Movie-App-Backend/internal/config"
	"github.com/Techwolf78/Movie-App-Backend/internal/db"
	"github.com/Techwolf78/Movie-App-Backend/internal/logger"
)

// @title Movie App Booking API
// @version 1.0
// @description User identity, access control and booking glue for the movie app
func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	database, err := db.Connect(cfg.Database)
	if err != nil {
		log.Fatal("failed to connect to database", "error", err)
	}
	defer database.Close()

	if err := db.RunMigrations(db.DSN(cfg.Database)); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}
	log.Info("migrations applied")

	router := routes.SetupRoutes(database, cfg, log)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// starts server in a goroutine
	go func() {
		log.Info("server running", "port", cfg.Server.Port)
		err := server.ListenAndServe()

		if err != nil && err != http.ErrServerClosed {
			log.Fatal("error starting the server", "error", err)
		}
	}()

	// channel to capture quit signals (e.g. CTRL+C)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down the server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatal("error on server shutdown", "error", err)
	}

	log.Info("server shut down successfully")
}

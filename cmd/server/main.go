package main

import (
	"log"
	"net/http"
	"os"

	"delivery_admin/internal/config"
	"delivery_admin/internal/logger"
	"delivery_admin/internal/middleware"
	"delivery_admin/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Connect to the database
	config.InitDB()

	// Setup Gin router
	r := routes.SetupRouter(config.DB)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	addr := os.Getenv("LISTEN_ADDR")
	if addr == "" {
		addr = "0.0.0.0:8080"
	}

	log.Printf("🚀 Server running at %s", addr)
	log.Fatal(http.ListenAndServe(addr, handler))
}

package main

import (
	"Bolita/config"
	_ "Bolita/config/swagger"
	"Bolita/middleware"
	"Bolita/routes"
	"Bolita/services/rooms"
	"Bolita/services/socket_io"
	"log"

	"github.com/gin-gonic/gin"
)

// @title Bolita API
// @version 1.0
// @description Gin-Gonic server for the "Bolita" party-game rooms
// @BasePath /
func main() {
	log.Println("Setting up server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	if cfg.Prod {
		gin.SetMode(gin.ReleaseMode)
	}

	// All room state lives here, in memory, for the life of the process.
	roomService := rooms.NewService()

	r := gin.Default()

	middleware.SetUpMiddleware(r, cfg)

	routes.SetupRoutes(r, roomService)

	sio := &socket_io.MySocketServer{}
	sio.Start(r, cfg, roomService)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"stayspot/pkg/database"
	"stayspot/pkg/handlers"
)

func main() {
	log.Println("Starting stayspot server...")

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	db, err := database.Init()
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	database.Seed(db)

	if os.Getenv("APP_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	server := gin.Default()
	h := handlers.New(db)
	h.RegisterRoutes(server)

	addr := os.Getenv("SERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Printf("stayspot server starting on %s", addr)
	if err := server.Run(addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

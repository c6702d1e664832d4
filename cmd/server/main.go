package main

import (
	"log"
	"os"

	"factboard/internal/db"
	"factboard/internal/router"
	"factboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, finding env vars from system")
	}

	// Initialize Database
	db.Init()

	// Initialize Gin
	r := gin.Default()

	router.RegisterRoutes(r, store.NewFactStore(db.DB))

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Factboard server starting on :%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal(err)
	}
}

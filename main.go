package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/LianshengTAT/Wuhan-Metro-Simulation-System/config"
	"github.com/LianshengTAT/Wuhan-Metro-Simulation-System/handlers"
	"github.com/LianshengTAT/Wuhan-Metro-Simulation-System/ingest"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default environment variables")
	}

	cfg := config.Load()

	log.Printf("Loading subway network from %s...", cfg.DataFile)
	graph, err := ingest.LoadFile(cfg.DataFile)
	if err != nil {
		log.Fatalf("Failed to load subway network: %v", err)
	}
	log.Printf("Subway network ready: %d stations on %d lines", graph.StationCount(), graph.LineCount())

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"*"}
	router.Use(cors.New(corsConfig))

	handler := handlers.NewSubwayHandler(graph)
	handler.RegisterRoutes(router)

	log.Printf("Subway route server starting on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"inventory/cmd"
	"inventory/internal/container"
	"inventory/internal/database"
	"inventory/internal/logger"
)

func init() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	cmd.Execute(ctx)
}

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	db, err := database.NewPostgresConnection(dbURL)
	if err != nil {
		log.Fatalf("Error: %v", err)
	}
	defer db.Close()

	log.Println("Connected to the database successfully!")

	app := container.NewAppContainer(db, logger.NewLogger())

	router := gin.Default()
	app.AssetHandler.RegisterRoutes(router)
	app.AcquisitionHandler.RegisterRoutes(router)
	app.AdjustmentHandler.RegisterRoutes(router)
	app.RollupHandler.RegisterRoutes(router)
	app.CustodianHandler.RegisterRoutes(router)
	app.MovementHandler.RegisterRoutes(router)
	app.DashboardHandler.RegisterRoutes(router)
	app.HistoryHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if err := router.Run(os.Getenv("APP_HOST")); err != nil {
		panic(err)
	}
}

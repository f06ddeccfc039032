package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/refind-app/api-go/config"
	"github.com/refind-app/api-go/controllers"
	"github.com/refind-app/api-go/embedding"
	"github.com/refind-app/api-go/routes"
	"github.com/refind-app/api-go/services"
	"github.com/refind-app/api-go/stores"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	// Initialize database
	db := config.InitDB()

	matchCfg := config.MatchingConfig()

	embedCfg := config.GetEmbeddingConfig()
	embedder := embedding.NewHTTPProvider(embedCfg.ServiceURL, embedCfg.Timeout)
	defer embedder.Close()

	itemStore := stores.NewItemStore(db)
	matchStore := stores.NewMatchStore(db)
	blacklistStore := stores.NewBlacklistStore(db)
	statsStore := stores.NewStatsStore(db)

	matchService := services.NewMatchService(itemStore, matchStore, blacklistStore, matchCfg, sugar)
	rejectionService := services.NewRejectionService(itemStore, matchStore, blacklistStore, statsStore, matchCfg, sugar)

	itemController := controllers.NewItemController(itemStore, matchService, embedder, sugar)
	matchController := controllers.NewMatchController(matchStore, rejectionService, sugar)

	// Create a new Gin router
	r := gin.Default()

	routes.SetupRoutes(r, itemController, matchController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	sugar.Infow("starting server", "port", port)
	if err := r.Run(":" + port); err != nil {
		sugar.Fatalw("server exited", "error", err)
	}
}

package main

import (
	"context"
	"log"
	"net/http"

	"cens-backend/internal/config"
	"cens-backend/internal/database"
	"cens-backend/internal/drive"
	"cens-backend/internal/handlers"
	"cens-backend/internal/services"
	"cens-backend/internal/sheets"
	"cens-backend/internal/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	db := database.Connect(cfg.DatabaseURL)
	database.AutoMigrate(db)

	var storage services.FileStorage
	if cfg.GoogleServiceAccountKey != "" {
		client, err := drive.New(context.Background(), []byte(cfg.GoogleServiceAccountKey))
		if err != nil {
			log.Fatalf("drive client: %v", err)
		}
		storage = client
	} else {
		log.Println("GOOGLE_SERVICE_ACCOUNT_KEY not set, uploads will be rejected")
	}

	submissions := store.New(db)
	relay := sheets.NewRelay()
	pipeline := services.NewPipeline(storage, relay)

	competitionService := services.NewCompetitionService(pipeline, submissions, cfg.DriveFolderID, cfg.SheetsWebhookURL)
	registrationService := services.NewRegistrationService(pipeline, submissions, cfg.SheetsWebhookRegistrationURL)
	essayService := services.NewEssayService(pipeline, submissions, cfg.DriveEssayFolderID, cfg.SheetsWebhookEssayURL)
	proposalService := services.NewProposalService(pipeline, submissions, cfg.DriveProposalFolderID, cfg.SheetsWebhookProposalURL)
	eventService := services.NewEventService(pipeline, submissions, cfg.DriveEventFolderID, cfg.SheetsWebhookEventURL)
	uploadService := services.NewUploadService(storage, cfg.DriveFolderID)

	competitionHandler := handlers.NewCompetitionHandler(competitionService)
	registrationHandler := handlers.NewRegistrationHandler(registrationService)
	essayHandler := handlers.NewEssayHandler(essayService)
	proposalHandler := handlers.NewProposalHandler(proposalService)
	eventHandler := handlers.NewEventHandler(eventService)
	uploadHandler := handlers.NewUploadHandler(uploadService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.POST("/submit-competition", competitionHandler.Submit)
		api.POST("/submit-registration", registrationHandler.Submit)
		api.POST("/submit-essay", essayHandler.Submit)
		api.POST("/submit-proposal", proposalHandler.Submit)
		api.POST("/submit-event", eventHandler.Submit)
		api.POST("/upload-file", uploadHandler.Upload)
	}

	log.Printf("server listening on :%s", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

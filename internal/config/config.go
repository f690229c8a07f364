package config

import "os"

type Config struct {
	ServerPort string

	DatabaseURL string

	GoogleServiceAccountKey string
	DriveFolderID           string
	DriveEssayFolderID      string
	DriveProposalFolderID   string
	DriveEventFolderID      string

	SheetsWebhookURL             string
	SheetsWebhookEssayURL        string
	SheetsWebhookProposalURL     string
	SheetsWebhookEventURL        string
	SheetsWebhookRegistrationURL string
}

func Load() *Config {
	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),

		DatabaseURL: getEnv("DATABASE_URL", ""),

		GoogleServiceAccountKey: getEnv("GOOGLE_SERVICE_ACCOUNT_KEY", ""),
		DriveFolderID:           getEnv("DRIVE_FOLDER_ID", ""),
		DriveEssayFolderID:      getEnv("DRIVE_ESSAY_FOLDER_ID", ""),
		DriveProposalFolderID:   getEnv("DRIVE_PROPOSAL_FOLDER_ID", ""),
		DriveEventFolderID:      getEnv("DRIVE_EVENT_FOLDER_ID", ""),

		SheetsWebhookURL:             getEnv("SHEETS_WEBHOOK_URL", ""),
		SheetsWebhookEssayURL:        getEnv("SHEETS_WEBHOOK_URL_ESSAY", ""),
		SheetsWebhookProposalURL:     getEnv("SHEETS_WEBHOOK_URL_PROPOSAL", ""),
		SheetsWebhookEventURL:        getEnv("SHEETS_WEBHOOK_URL_EVENT", ""),
		SheetsWebhookRegistrationURL: getEnv("SHEETS_WEBHOOK_URL_REGISTRATION", ""),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App         AppConfig
	Database    DatabaseConfig
	Ai          AIConfig
	Recommender RecommenderConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
}

type DatabaseConfig struct {
	Connection string
}

type AIConfig struct {
	Provider     string // "groq" or "gemini"
	Model        string
	GroqAPIKey   string
	GroqBaseURL  string
	GoogleGemini string
	MaxRetries   int
}

type RecommenderConfig struct {
	SessionTTLSeconds      int
	ShortlistSize          int
	TopResults             int
	AnalysisTimeoutSeconds int
	ResolvedTopic          string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log.csv"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", ""),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Ai: AIConfig{
			Provider:     getEnv("LLM_PROVIDER", "groq"),
			Model:        getEnv("LLM_MODEL", ""),
			GroqAPIKey:   getEnv("GROQ_API_KEY", ""),
			GroqBaseURL:  getEnv("GROQ_BASE_URL", ""),
			GoogleGemini: getEnv("GOOGLE_GEMINI_API_KEY", ""),
			MaxRetries:   getEnvAsInt("LLM_MAX_RETRIES", 1),
		},
		Recommender: RecommenderConfig{
			SessionTTLSeconds:      getEnvAsInt("RECOMMENDER_SESSION_TTL_SECONDS", 600),
			ShortlistSize:          getEnvAsInt("RECOMMENDER_SHORTLIST_SIZE", 7),
			TopResults:             getEnvAsInt("RECOMMENDER_TOP_RESULTS", 5),
			AnalysisTimeoutSeconds: getEnvAsInt("RECOMMENDER_ANALYSIS_TIMEOUT_SECONDS", 30),
			ResolvedTopic:          getEnv("RECOMMENDATION_RESOLVED_TOPIC_NAME", "RECOMMENDATION_RESOLVED"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

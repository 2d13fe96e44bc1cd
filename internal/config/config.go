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
	Keys        APIKeys
	Ai          AIConfig
	Negotiation NegotiationConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
	SessionStore       string // "memory" or "redis"
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	OpenAI       string
	GoogleGemini string
	Anthropic    string
	EmbedTopic   string // Embedding topic name on the event bus
}

type AIConfig struct {
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	LLMModel          string // chat model for the local ollama fallback
	PolishAnswers     bool   // rewrite retrieval answers through the LLM chain
}

// NegotiationConfig holds the boot-time defaults for the threshold set.
// Runtime values live in negotiation.Manager and are replaced whole on
// admin updates.
type NegotiationConfig struct {
	HighStockThreshold int
	LowStockThreshold  int
	HighDiscountRate   float64
	MediumDiscountRate float64
	LowDiscountRate    float64
	DefaultMinPricePct float64
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
			SessionStore:       getEnv("SESSION_STORE", "memory"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			OpenAI:       getEnv("OPENAI_API_KEY", ""),
			GoogleGemini: getEnv("GEMINI_API_KEY", ""),
			Anthropic:    getEnv("ANTHROPIC_API_KEY", ""),
			EmbedTopic:   getEnv("EMBED_PRODUCT_TOPIC_NAME", "EMBED_PRODUCT"),
		},
		Ai: AIConfig{
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMModel:          getEnv("LLM_MODEL", "llama3"),
			PolishAnswers:     getEnvAsBool("POLISH_ANSWERS", false),
		},
		Negotiation: NegotiationConfig{
			HighStockThreshold: getEnvAsInt("HIGH_STOCK_THRESHOLD", 15),
			LowStockThreshold:  getEnvAsInt("LOW_STOCK_THRESHOLD", 5),
			HighDiscountRate:   getEnvAsFloat("HIGH_DISCOUNT_RATE", 0.15),
			MediumDiscountRate: getEnvAsFloat("MEDIUM_DISCOUNT_RATE", 0.10),
			LowDiscountRate:    getEnvAsFloat("LOW_DISCOUNT_RATE", 0.05),
			DefaultMinPricePct: getEnvAsFloat("DEFAULT_MIN_PRICE_PCT", 0.80),
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

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

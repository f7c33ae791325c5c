package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration. The inquiry composer receives its
// contact values from here by injection, never from ambient globals.
type Config struct {
	ServerPort string

	// Agency identity
	SiteName       string
	HomeCity       string
	ContactPhone   string
	ContactEmail   string
	ContactAddress string

	// Outbound messaging
	WhatsAppBaseURL string

	// External content API (testimonials / contact queries)
	ContentAPIBaseURL string
	ContentAPIStoreID string

	SessionTTLMinutes int
}

// Load loads configuration from environment variables. A .env file is
// optional for local development.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort: getEnv("PORT", "8080"),

		SiteName:       getEnv("SITE_NAME", "TravelEnd"),
		HomeCity:       getEnv("HOME_CITY", "Thoothukudi"),
		ContactPhone:   getEnv("CONTACT_PHONE", "+91 98765 43210"),
		ContactEmail:   getEnv("CONTACT_EMAIL", "hello@travelend.in"),
		ContactAddress: getEnv("CONTACT_ADDRESS", "Thoothukudi, Tamil Nadu"),

		WhatsAppBaseURL: getEnv("WHATSAPP_BASE_URL", "https://wa.me"),

		ContentAPIBaseURL: getEnv("CONTENT_API_URL", ""),
		ContentAPIStoreID: getEnv("CONTENT_API_STORE_ID", ""),

		SessionTTLMinutes: getEnvInt("SESSION_TTL_MINUTES", 60),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil || value <= 0 {
		return defaultValue
	}
	return value
}

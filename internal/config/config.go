package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddr string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Client data layer settings.
	APIBaseURL  string
	UseMockData bool
	DataDir     string
	MockDelay   time.Duration
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", ""),
		DBName:      getEnv("DB_NAME", "biz365_admin"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		UseMockData: useMockData(),
		DataDir:     getEnv("DATA_DIR", "./data"),
		MockDelay:   mockDelay(),
	}

	log.Println("✅ Config loaded")
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Mock mode stays ON unless USE_MOCK_DATA parses to an explicit false.
func useMockData() bool {
	v := os.Getenv("USE_MOCK_DATA")
	if v == "" {
		return true
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return parsed
}

func mockDelay() time.Duration {
	ms, err := strconv.Atoi(getEnv("MOCK_DELAY_MS", "0"))
	if err != nil || ms < 0 {
		return 0
	}
	return time.Duration(ms) * time.Millisecond
}

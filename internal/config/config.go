package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config menampung semua konfigurasi service, dibaca sekali di main
type Config struct {
	Port     string
	LogLevel string

	// Secret untuk tanda tangan JWT identity provider
	JWTSecret string

	// Backend KV store: mysql | redis | memory
	KVDriver      string
	MySQLDSN      string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Midtrans (kosong = endpoint pembayaran nonaktif)
	MidtransServerKey  string
	MidtransProduction bool

	// Path file service account Firebase (kosong = push notification mati)
	FirebaseCredentials string

	RateLimitRPS   float64
	RateLimitBurst int
}

// Load membaca .env (kalau ada) lalu environment variables dengan default
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	return &Config{
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		// Fallback kalau .env lupa diisi; JANGAN dipakai di production
		JWTSecret: getEnv("JWT_SECRET", "rahasia_dapur_klinik"),

		KVDriver:      getEnv("KV_DRIVER", "mysql"),
		MySQLDSN:      os.Getenv("MYSQL_DSN"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		MidtransServerKey:  os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransProduction: getEnvBool("MIDTRANS_PRODUCTION", false),

		FirebaseCredentials: os.Getenv("FIREBASE_CREDENTIALS"),

		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 5),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 10),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return fallback
}

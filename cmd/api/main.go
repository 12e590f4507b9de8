package main

import (
	"net/http"

	"klinik-backend/internal/auth"
	"klinik-backend/internal/config"
	"klinik-backend/internal/handlers"
	"klinik-backend/internal/middleware"
	"klinik-backend/internal/notify"
	"klinik-backend/internal/payment"
	"klinik-backend/internal/routes"
	"klinik-backend/internal/store"
	"klinik-backend/pkg/logger"
	"klinik-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load Config (termasuk .env)
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	// 2. Siapkan KV Store sesuai driver
	kv := openStore(cfg, log)

	// 3. Identity provider dibuat SEKALI di sini lalu di-inject ke bawah
	identity := auth.NewIdentityProvider(kv, cfg.JWTSecret)

	// 4. Integrasi eksternal opsional
	var payments payment.Gateway
	if cfg.MidtransServerKey != "" {
		payments = payment.NewSnap(cfg.MidtransServerKey, cfg.MidtransProduction)
	} else {
		log.Info("Midtrans tidak dikonfigurasi, endpoint pembayaran nonaktif")
	}
	notifier := notify.New(cfg.FirebaseCredentials, log)

	h := handlers.New(kv, identity, payments, notifier, log)

	// 5. Router + Middleware Global
	r := gin.New()
	r.Use(middleware.RequestLogger(log))
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ interface{}) {
		// Panic apapun dijawab 500 generik, detail cuma masuk log
		utils.APIError(c, http.StatusInternalServerError, "Internal server error")
	}))
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// 6. Setup Routes
	routes.SetupRoutes(r, h, identity)

	// 7. Run Server
	log.Info("Server berjalan di port " + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("Server berhenti")
	}
}

// openStore memilih backend KV store.
// MySQL/Redis yang dikonfigurasi tapi tidak bisa diakses = fatal;
// MYSQL_DSN kosong jatuh ke in-memory biar gampang dicoba lokal.
func openStore(cfg *config.Config, log *logger.Logger) store.KV {
	switch cfg.KVDriver {
	case "mysql":
		if cfg.MySQLDSN == "" {
			log.Warn("MYSQL_DSN kosong, pakai store in-memory (data hilang saat restart)")
			return store.NewMemory()
		}
		s, err := store.NewGorm(cfg.MySQLDSN)
		if err != nil {
			log.WithError(err).Fatal("Gagal konek MySQL")
		}
		log.Info("KV store: MySQL")
		return s
	case "redis":
		s, err := store.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			log.WithError(err).Fatal("Gagal konek Redis")
		}
		log.Info("KV store: Redis")
		return s
	case "memory":
		log.Info("KV store: in-memory")
		return store.NewMemory()
	default:
		log.Fatal("KV_DRIVER tidak dikenal: " + cfg.KVDriver)
		return nil
	}
}

package main

import (
	"context"
	"log"
	"os"
	"time"

	"amorago/internal/ai"
	"amorago/internal/api"
	"amorago/internal/auth"
	"amorago/internal/chat"
	"amorago/internal/config"
	"amorago/internal/logger"
	"amorago/internal/redis"
	"amorago/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on environment variables")
	}

	cfgPath := os.Getenv("AMORAGO_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	zlog, err := logger.New(os.Getenv("AMORAGO_ENV"))
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zlog.Sync()

	dbType := os.Getenv("AMORAGO_DB")
	if dbType == "" {
		dbType = "sqlite3"
	}
	zlog.Info("opening database", "driver", dbType)
	db, err := storage.Open(dbType, cfg)
	if err != nil {
		zlog.Fatal("open database", "err", err)
	}
	defer db.Close()

	if err := storage.Migrate(db, dbType); err != nil {
		zlog.Fatal("migrate database", "err", err)
	}

	// Redis only backs token revocation; the service runs without it.
	rdb, err := redis.NewRedisClient(cfg)
	if err != nil {
		zlog.Warn("redis unavailable, token revocation disabled", "err", err)
		rdb = nil
	} else {
		defer rdb.Close()
	}

	generator := selectGenerator(cfg, zlog)

	tokenTTL := time.Duration(cfg.Auth.TokenTTLHours) * time.Hour
	authService := auth.NewService(db, rdb, zlog, cfg.Auth.JWTSecret, tokenTTL)
	chatService := chat.NewService(db, generator, zlog)

	handlers := api.NewHandler(authService, chatService, zlog)

	router := gin.Default()
	router.Use(cors.Default())
	handlers.RegisterRoutes(router)

	addr := cfg.BasicConfig.ServerAddress
	if addr == "" {
		addr = ":8080"
	}
	zlog.Info("starting server", "addr", addr)
	if err := router.Run(addr); err != nil {
		zlog.Fatal("server stopped", "err", err)
	}
}

// selectGenerator prefers the first configured model provider and falls back
// to the deterministic template echo.
func selectGenerator(cfg *config.Config, zlog *logger.Logger) chat.Generator {
	for _, name := range []string{"openai", "gemini", "claude"} {
		provCfg, ok := cfg.Providers[name]
		if !ok || provCfg.APIKey == "" {
			continue
		}
		gen, err := ai.NewModelGenerator(context.Background(), name, provCfg)
		if err != nil {
			zlog.Warn("model provider unavailable", "provider", name, "err", err)
			continue
		}
		zlog.Info("using model generator", "provider", name, "model", provCfg.Model)
		return gen
	}
	zlog.Info("no model provider configured, using template generator")
	return chat.TemplateGenerator{}
}

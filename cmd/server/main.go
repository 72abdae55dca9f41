package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/hikegear/storefront/common/logger"
	"github.com/hikegear/storefront/config"
	"github.com/hikegear/storefront/data"
	"github.com/hikegear/storefront/repository"
	"github.com/hikegear/storefront/routes"
	"github.com/hikegear/storefront/services"
	"github.com/hikegear/storefront/storage"
)

func main() {
	cfg := config.Load()

	logger.Initialize(cfg.Env)
	defer logger.Sync()

	ctx := context.Background()

	// Blob store: file-backed by default, Redis when configured.
	var store storage.BlobStore
	switch cfg.BlobBackend {
	case "redis":
		client, err := storage.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		logger.Log.Info("Connected to Redis")
		store = storage.NewRedisStore(client)
	default:
		fileStore, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("Failed to open blob store: %v", err)
		}
		store = fileStore
	}

	catalogRepo := repository.NewMemoryCatalog(data.SeedProducts())
	cartRepo := repository.NewMemoryCarts()
	orderRepo, err := repository.NewOrderLedger(ctx, store)
	if err != nil {
		log.Fatalf("Failed to load order ledger: %v", err)
	}
	contentRepo := repository.NewContentRepository(ctx, store)

	tokenService := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)
	authService := services.NewAuthService(data.SeedAllowList(), tokenService)
	catalogService := services.NewCatalogService(catalogRepo, data.Categories())
	cartService := services.NewCartService(cartRepo, catalogRepo)
	orderService := services.NewOrderService(orderRepo, cartService)
	contentService := services.NewContentService(contentRepo)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.RequestLogger())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.Register(router, routes.Deps{
		Tokens:  tokenService,
		Auth:    authService,
		Catalog: catalogService,
		Carts:   cartService,
		Orders:  orderService,
		Content: contentService,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		logger.Log.Info("Storefront is running", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Log.Info("Shutting down gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Shutdown error: %v", err)
	}
	logger.Log.Info("Server shutdown complete.")
}

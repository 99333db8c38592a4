package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/api/option"

	"github.com/mebelart/admin-service/config"
	categoryhandler "github.com/mebelart/admin-service/internal/category/handler"
	categoryrepo "github.com/mebelart/admin-service/internal/category/repository"
	categoryuc "github.com/mebelart/admin-service/internal/category/usecase"
	dashboardhandler "github.com/mebelart/admin-service/internal/dashboard/handler"
	dashboarduc "github.com/mebelart/admin-service/internal/dashboard/usecase"
	datahandler "github.com/mebelart/admin-service/internal/datamgmt/handler"
	datauc "github.com/mebelart/admin-service/internal/datamgmt/usecase"
	"github.com/mebelart/admin-service/internal/events"
	galleryhandler "github.com/mebelart/admin-service/internal/gallery/handler"
	galleryrepo "github.com/mebelart/admin-service/internal/gallery/repository"
	galleryuc "github.com/mebelart/admin-service/internal/gallery/usecase"
	orderhandler "github.com/mebelart/admin-service/internal/order/handler"
	orderrepo "github.com/mebelart/admin-service/internal/order/repository"
	orderuc "github.com/mebelart/admin-service/internal/order/usecase"
	producthandler "github.com/mebelart/admin-service/internal/product/handler"
	productrepo "github.com/mebelart/admin-service/internal/product/repository"
	productuc "github.com/mebelart/admin-service/internal/product/usecase"
	"github.com/mebelart/admin-service/internal/server"
	settingshandler "github.com/mebelart/admin-service/internal/settings/handler"
	settingsrepo "github.com/mebelart/admin-service/internal/settings/repository"
	settingsuc "github.com/mebelart/admin-service/internal/settings/usecase"
	"github.com/mebelart/admin-service/internal/store"
	userhandler "github.com/mebelart/admin-service/internal/user/handler"
	userrepo "github.com/mebelart/admin-service/internal/user/repository"
	useruc "github.com/mebelart/admin-service/internal/user/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	cfg := config.LoadEnv()

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("logger init: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.Firebase.ProjectID}, opts...)
	if err != nil {
		logger.Fatal("firebase init failed", zap.Error(err))
	}

	fsClient, err := app.Firestore(ctx)
	if err != nil {
		logger.Fatal("firestore init failed", zap.Error(err))
	}
	defer fsClient.Close()

	gcsClient, err := storage.NewClient(ctx, opts...)
	if err != nil {
		logger.Fatal("cloud storage init failed", zap.Error(err))
	}
	defer gcsClient.Close()

	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Fatal("firebase auth init failed", zap.Error(err))
	}

	cache := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := cache.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unavailable, list caching disabled", zap.Error(err))
		cache = nil
	}

	publisher := events.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic, logger)
	defer publisher.Close()

	db := store.NewFirestore(fsClient)
	objects := store.NewCloudStorage(gcsClient, cfg.Firebase.StorageBucket)

	categoryRepo := categoryrepo.NewStoreRepository(db)
	categoryUC := categoryuc.NewCategoryUseCase(categoryRepo, logger)

	productsRepo := productrepo.NewProducts(db)
	catalogUC := productuc.NewCatalogUseCase(
		productsRepo,
		productrepo.NewTables(db),
		productrepo.NewShelves(db),
		productrepo.NewChests(db),
		objects,
		cache,
		logger,
	)

	galleryRepo := galleryrepo.NewStoreRepository(db)
	galleryUC := galleryuc.NewGalleryUseCase(galleryRepo, objects, logger)

	orderRepo := orderrepo.NewStoreRepository(db)
	orderUC := orderuc.NewOrderUseCase(orderRepo, productsRepo, publisher, logger)

	userRepo := userrepo.NewStoreRepository(db)
	userUC := useruc.NewUserUseCase(userRepo, userrepo.NewFirebaseAccounts(authClient), logger)

	settingsRepo := settingsrepo.NewStoreRepository(db)
	settingsUC := settingsuc.NewSettingsUseCase(settingsRepo, logger)

	purgeUC := datauc.NewPurgeUseCase(db, objects, publisher, logger)
	statsUC := dashboarduc.NewStatsUseCase(db, logger)

	srv := server.New(cfg, logger, authClient,
		categoryhandler.NewCategoryHandler(categoryUC, logger),
		producthandler.NewCatalogHandler(catalogUC, logger),
		galleryhandler.NewGalleryHandler(galleryUC, logger),
		orderhandler.NewOrderHandler(orderUC, logger),
		userhandler.NewUserHandler(userUC, logger),
		settingshandler.NewSettingsHandler(settingsUC, logger),
		datahandler.NewDataHandler(purgeUC, logger),
		dashboardhandler.NewDashboardHandler(statsUC, logger),
	)

	go func() {
		if err := srv.Run(); err != nil {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown incomplete", zap.Error(err))
	}
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Server.AppEnv == "dev" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	zapCfg.Encoding = cfg.Logger.Encoding
	zapCfg.DisableCaller = cfg.Logger.DisableCaller
	zapCfg.DisableStacktrace = cfg.Logger.DisableStacktrace

	return zapCfg.Build()
}

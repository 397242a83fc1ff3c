package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/alictclasses/alict-backend/internal/config"
	"github.com/alictclasses/alict-backend/internal/database"
	"github.com/alictclasses/alict-backend/internal/handler"
	"github.com/alictclasses/alict-backend/internal/logger"
	"github.com/alictclasses/alict-backend/internal/repository"
	"github.com/alictclasses/alict-backend/internal/router"
	"github.com/alictclasses/alict-backend/internal/service"
	"github.com/alictclasses/alict-backend/internal/validator"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ALICT Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	adminRepo := repository.NewAdminRepository(pool)
	classRepo := repository.NewClassRepository(pool)
	monthRepo := repository.NewMonthRepository(pool)
	videoRepo := repository.NewVideoRepository(pool)
	noteRepo := repository.NewNoteRepository(pool)
	resultRepo := repository.NewResultRepository(pool)
	galleryRepo := repository.NewGalleryRepository(pool)
	contactRepo := repository.NewContactRepository(pool)
	regRepo := repository.NewRegistrationRepository(pool)
	settingRepo := repository.NewSettingRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb, adminRepo)
	catalogService := service.NewCatalogService(classRepo, monthRepo, videoRepo, noteRepo, log)
	classService := service.NewClassService(classRepo)
	contentService := service.NewContentService(monthRepo, videoRepo, noteRepo)
	showcaseService := service.NewShowcaseService(resultRepo, galleryRepo)
	contactService := service.NewContactService(contactRepo)
	regService := service.NewRegistrationService(regRepo)
	settingService := service.NewSettingService(settingRepo, rdb, cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Catalog:      handler.NewCatalogHandler(catalogService, classService, settingService),
		Class:        handler.NewClassHandler(classService),
		Month:        handler.NewMonthHandler(contentService),
		Video:        handler.NewVideoHandler(contentService),
		Note:         handler.NewNoteHandler(contentService),
		Result:       handler.NewResultHandler(showcaseService),
		Gallery:      handler.NewGalleryHandler(showcaseService),
		Contact:      handler.NewContactHandler(contactService),
		Registration: handler.NewRegistrationHandler(regService),
		Setting:      handler.NewSettingHandler(settingService),
	}

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}

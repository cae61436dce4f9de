package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jonboulle/clockwork"

	"github.com/civicshield/evacuation_system/internal/config"
	v1 "github.com/civicshield/evacuation_system/internal/handler/http/v1"
	"github.com/civicshield/evacuation_system/internal/notifier"
	"github.com/civicshield/evacuation_system/internal/provider/nominatim"
	"github.com/civicshield/evacuation_system/internal/provider/openroute"
	"github.com/civicshield/evacuation_system/internal/repository"
	"github.com/civicshield/evacuation_system/internal/scheduler"
	"github.com/civicshield/evacuation_system/internal/service"
	"github.com/civicshield/evacuation_system/pkg/logger"
	"github.com/civicshield/evacuation_system/pkg/postgres"
	redisclient "github.com/civicshield/evacuation_system/pkg/redis"
	"github.com/sirupsen/logrus"
)

// @title Evacuation System API
// @version 1.0
// @description Danger zone tracking and evacuation routing API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск миграций
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя событий зон
	eventPublisher := notifier.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера доставки событий
	eventWorker := notifier.NewWorker(redisClient, log, cfg)
	eventWorker.Start(ctx)

	// Инициализация диспетчера городских оповещений
	alertDispatcher := notifier.NewHTTPAlertDispatcher(cfg, log)

	// Инициализация внешних провайдеров
	geocoder := nominatim.NewClient(cfg, log)
	routeProvider := openroute.NewClient(cfg, log)

	// Инициализация репозиториев
	incidentRepo := repository.NewIncidentRepository(dbpool)
	zoneRepo := repository.NewDangerZoneRepository(dbpool, redisClient, cfg.ZoneCacheTTL)

	// Инициализация сервисов
	clock := clockwork.NewRealClock()
	zoneService := service.NewZoneService(zoneRepo, incidentRepo, eventPublisher, alertDispatcher, clock, cfg, log)
	reportService := service.NewReportService(incidentRepo, geocoder, zoneService, clock, cfg, log)
	finder := service.NewDestinationFinder(geocoder, cfg, log)
	synth := service.NewEscapeSynthesizer(cfg)
	scorer := service.NewRouteScorer(cfg)
	evacuationService := service.NewEvacuationService(zoneService, finder, synth, scorer, routeProvider, incidentRepo, clock, cfg, log)

	// Запуск планировщика цикла обслуживания зон
	maintenance := scheduler.NewMaintenanceScheduler(zoneService, cfg, log)
	if err := maintenance.Start(); err != nil {
		log.Fatalf("Failed to start maintenance scheduler: %v", err)
	}
	defer maintenance.Stop()

	// Инициализация хэндлеров
	handler := v1.NewHandler(reportService, zoneService, evacuationService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}

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

	"github.com/alarmmonitor/fleet_coordination_system/internal/config"
	"github.com/alarmmonitor/fleet_coordination_system/internal/geocode"
	v1 "github.com/alarmmonitor/fleet_coordination_system/internal/handler/http/v1"
	"github.com/alarmmonitor/fleet_coordination_system/internal/models"
	"github.com/alarmmonitor/fleet_coordination_system/internal/notifier"
	"github.com/alarmmonitor/fleet_coordination_system/internal/persistence"
	"github.com/alarmmonitor/fleet_coordination_system/internal/service"
	"github.com/alarmmonitor/fleet_coordination_system/internal/store"
	"github.com/alarmmonitor/fleet_coordination_system/internal/webhook"
	"github.com/alarmmonitor/fleet_coordination_system/pkg/logger"
	"github.com/alarmmonitor/fleet_coordination_system/pkg/postgres"
	redisclient "github.com/alarmmonitor/fleet_coordination_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/alarmmonitor/fleet_coordination_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// defaultPriorities - стартовый список меток приоритета, пока диспетчер
// не задал свой
var defaultPriorities = []string{"1", "2", "3"}

// @title Fleet Coordination System API
// @version 1.0
// @description Consistency engine for fleet vehicles and incidents.
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

// restoreState поднимает последние снимки хранилищ из PostgreSQL.
// Отсутствие снимка - штатный первый запуск, не ошибка.
func restoreState(
	ctx context.Context,
	persister *persistence.PostgresPersister,
	vehicles *store.VehicleStore,
	incidents *store.IncidentStore,
	priorities *store.PriorityStore,
	log *logrus.Logger,
) error {
	var vehicleSnap []*models.Vehicle
	found, err := persister.Load(ctx, service.StoreVehicles, &vehicleSnap)
	if err != nil {
		return fmt.Errorf("failed to load vehicles snapshot: %w", err)
	}
	if found {
		vehicles.Load(vehicleSnap)
		log.Infof("Restored %d vehicles from snapshot", len(vehicleSnap))
	}

	var incidentSnap []*models.Incident
	found, err = persister.Load(ctx, service.StoreIncidents, &incidentSnap)
	if err != nil {
		return fmt.Errorf("failed to load incidents snapshot: %w", err)
	}
	if found {
		incidents.Load(incidentSnap)
		log.Infof("Restored %d incidents from snapshot", len(incidentSnap))
	}

	var prioritySnap []string
	found, err = persister.Load(ctx, service.StorePriorities, &prioritySnap)
	if err != nil {
		return fmt.Errorf("failed to load priorities snapshot: %w", err)
	}
	if found {
		priorities.Set(prioritySnap)
	}

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

	// Хранилища состояния и восстановление последних снимков
	vehicleStore := store.NewVehicleStore()
	incidentStore := store.NewIncidentStore()
	priorityStore := store.NewPriorityStore(defaultPriorities)

	persister := persistence.NewPostgresPersister(dbpool, log)
	if err := restoreState(ctx, persister, vehicleStore, incidentStore, priorityStore, log); err != nil {
		log.Fatalf("Failed to restore state: %v", err)
	}

	// Узел уведомлений об изменениях с keep-alive рассылкой
	hub := notifier.NewHub(cfg.NotifierBuffer, log)
	go hub.RunHeartbeat(ctx, cfg.HeartbeatInterval)

	// Мост узел -> очередь Redis и воркер доставки вебхуков
	changePublisher := webhook.NewRedisChangePublisher(redisClient)
	bridge := webhook.NewBridge(hub, changePublisher, log)
	bridge.Start(ctx)

	webhookWorker := webhook.NewWorker(redisClient, log, cfg)
	webhookWorker.Start(ctx)

	// Геокодер
	geocoder := geocode.NewClient(cfg.GeocodeURL, cfg.GeocodeTimeout, log)

	// Инициализация сервиса координации
	fleetService := service.NewFleetService(vehicleStore, incidentStore, priorityStore, geocoder, persister, hub, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(fleetService, hub, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api, v1.APIKeyAuthMiddleware(cfg, log))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

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

package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	bulkUpdateHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/bulk_update_availability"
	clearAvailabilityHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/clear_availability"
	getCalendarHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/get_calendar"
	getSummaryHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/get_summary"
	upsertAvailabilityHandler "github.com/m04kA/REM-AvailabilityService/internal/api/handlers/upsert_availability"
	"github.com/m04kA/REM-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/REM-AvailabilityService/internal/config"
	"github.com/m04kA/REM-AvailabilityService/internal/index"
	availabilityRepo "github.com/m04kA/REM-AvailabilityService/internal/infra/storage/availability"
	catalogServiceClient "github.com/m04kA/REM-AvailabilityService/internal/integrations/catalogservice"
	availabilityService "github.com/m04kA/REM-AvailabilityService/internal/service/availability"
	bulkUpdateUC "github.com/m04kA/REM-AvailabilityService/internal/usecase/bulk_update"
	getCalendarUC "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_calendar"
	getSummaryUC "github.com/m04kA/REM-AvailabilityService/internal/usecase/get_summary"
	"github.com/m04kA/REM-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/REM-AvailabilityService/pkg/logger"
	"github.com/m04kA/REM-AvailabilityService/pkg/metrics"
	"github.com/m04kA/REM-AvailabilityService/pkg/simpletxmanager"
	"github.com/m04kA/REM-AvailabilityService/pkg/txmanager"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting REM-AvailabilityService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем клиент каталога объектов
	catalogClient := catalogServiceClient.NewClient(
		cfg.CatalogService.URL,
		time.Duration(cfg.CatalogService.Timeout)*time.Second,
		log,
	)
	log.Info("Catalog client initialized (CatalogService=%s timeout=%ds)",
		cfg.CatalogService.URL, cfg.CatalogService.Timeout)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}

	// Инициализируем репозиторий и transaction manager (с метриками или без)
	var (
		repository *availabilityRepo.Repository
		txMgr      TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		repository = availabilityRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		repository = availabilityRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Range Query Index: per-process производный кэш сетки, один на сервис
	rangeIndex := index.New()

	// Инициализируем сервисы
	availabilitySvc := availabilityService.NewService(
		repository,
		rangeIndex,
		log,
	)

	// Инициализируем use cases
	bulkUpdateUseCase := bulkUpdateUC.NewUseCase(
		repository,
		rangeIndex,
		txMgr,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		repository,
		catalogClient,
		rangeIndex,
		log,
	)

	getSummaryUseCase := getSummaryUC.NewUseCase(
		repository,
		catalogClient,
		log,
	)

	// Инициализируем handlers
	upsertAvailability := upsertAvailabilityHandler.NewHandler(availabilitySvc, log)
	clearAvailability := clearAvailabilityHandler.NewHandler(availabilitySvc, log)
	bulkUpdate := bulkUpdateHandler.NewHandler(bulkUpdateUseCase, log)
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	getSummary := getSummaryHandler.NewHandler(getSummaryUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарная сетка доступности юнитов объекта
	api.HandleFunc("/properties/{propertyId}/calendar",
		getCalendar.Handle).Methods(http.MethodGet)

	// Сводка доступности на дату
	api.HandleFunc("/properties/{propertyId}/availability/summary",
		getSummary.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Точечная установка статуса ячейки (unit, date)
	protected.HandleFunc("/units/{unitId}/availability/{date}",
		upsertAvailability.Handle).Methods(http.MethodPut)

	// Возврат ячейки к дефолтному available (удаление записи-исключения)
	protected.HandleFunc("/units/{unitId}/availability/{date}",
		clearAvailability.Handle).Methods(http.MethodDelete)

	// Массовое редактирование: units × dates одним атомарным пакетом
	protected.HandleFunc("/availability/bulk", bulkUpdate.Handle).Methods(http.MethodPost)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}

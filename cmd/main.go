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

	createBookingHandler "github.com/closer-platform/availability-service/internal/api/handlers/create_booking"
	getBlockedDatesHandler "github.com/closer-platform/availability-service/internal/api/handlers/get_blocked_dates"
	getBookingHandler "github.com/closer-platform/availability-service/internal/api/handlers/get_booking"
	getOccupancySummaryHandler "github.com/closer-platform/availability-service/internal/api/handlers/get_occupancy_summary"
	getPlatformConfigHandler "github.com/closer-platform/availability-service/internal/api/handlers/get_platform_config"
	listBookingsHandler "github.com/closer-platform/availability-service/internal/api/handlers/list_bookings"
	updateBookingStatusHandler "github.com/closer-platform/availability-service/internal/api/handlers/update_booking_status"
	updatePlatformConfigHandler "github.com/closer-platform/availability-service/internal/api/handlers/update_platform_config"
	"github.com/closer-platform/availability-service/internal/api/middleware"
	"github.com/closer-platform/availability-service/internal/config"
	bookingRepo "github.com/closer-platform/availability-service/internal/infra/storage/booking"
	configdocRepo "github.com/closer-platform/availability-service/internal/infra/storage/configdoc"
	listingRepo "github.com/closer-platform/availability-service/internal/infra/storage/listing"
	memberServiceClient "github.com/closer-platform/availability-service/internal/integrations/memberservice"
	"github.com/closer-platform/availability-service/internal/schema"
	bookingsService "github.com/closer-platform/availability-service/internal/service/bookings"
	configService "github.com/closer-platform/availability-service/internal/service/config"
	createBookingUC "github.com/closer-platform/availability-service/internal/usecase/create_booking"
	getBlockedDatesUC "github.com/closer-platform/availability-service/internal/usecase/get_blocked_dates"
	getOccupancySummaryUC "github.com/closer-platform/availability-service/internal/usecase/get_occupancy_summary"
	"github.com/closer-platform/availability-service/pkg/dbmetrics"
	"github.com/closer-platform/availability-service/pkg/logger"
	"github.com/closer-platform/availability-service/pkg/metrics"
	"github.com/closer-platform/availability-service/pkg/simpletxmanager"
	"github.com/closer-platform/availability-service/pkg/txmanager"
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

	log.Info("Starting availability-service...")
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

	// Инициализируем интеграционного клиента
	memberClient := memberServiceClient.NewClient(
		cfg.MemberService.URL,
		time.Duration(cfg.MemberService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (MemberService=%s timeout=%ds)",
		cfg.MemberService.URL, cfg.MemberService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository   *bookingRepo.Repository
		listingRepository   *listingRepo.Repository
		configdocRepository *configdocRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		listingRepository = listingRepo.NewRepository(wrappedDB)
		configdocRepository = configdocRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		listingRepository = listingRepo.NewRepository(db)
		configdocRepository = configdocRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	configSvc := configService.NewService(
		schema.Descriptions(),
		configdocRepository,
		memberClient,
		log,
	)
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		memberClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		listingRepository,
		configSvc,
		memberClient,
		txMgr,
		log,
	)
	getBlockedDatesUseCase := getBlockedDatesUC.NewUseCase(
		configSvc,
		memberClient,
		log,
	)
	getOccupancySummaryUseCase := getOccupancySummaryUC.NewUseCase(
		bookingRepository,
		listingRepository,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBlockedDates := getBlockedDatesHandler.NewHandler(getBlockedDatesUseCase, log)
	getOccupancySummary := getOccupancySummaryHandler.NewHandler(getOccupancySummaryUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getPlatformConfig := getPlatformConfigHandler.NewHandler(configSvc, log)
	updatePlatformConfig := updatePlatformConfigHandler.NewHandler(configSvc, log)

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

	// Разрешённая конфигурация платформы
	api.HandleFunc("/config", getPlatformConfig.HandleList).Methods(http.MethodGet)
	api.HandleFunc("/config/{slug}", getPlatformConfig.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Список бронирований за период
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Переход статуса бронирования (confirm/reject/cancel)
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// --- Календарь бронирования ---
	// Заблокированные даты для календаря
	protected.HandleFunc("/blocked-dates", getBlockedDates.Handle).Methods(http.MethodGet)

	// --- Дашборд ---
	// Сводка занятости
	protected.HandleFunc("/dashboard/occupancy", getOccupancySummary.Handle).Methods(http.MethodGet)

	// --- Конфигурация платформы ---
	// Обновление категории конфигурации (только администраторы)
	protected.HandleFunc("/config/{slug}", updatePlatformConfig.Handle).Methods(http.MethodPut)

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

	log.Info("Server exited")
}

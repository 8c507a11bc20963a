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

	createReservationHandler "github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers/create_reservation"
	deleteReservationHandler "github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers/delete_reservation"
	getDayScheduleHandler "github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers/get_day_schedule"
	getLiveStatusHandler "github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers/get_live_status"
	getResourceReservationsHandler "github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers/get_resource_reservations"
	markPaidHandler "github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers/mark_paid"
	quickReserveHandler "github.com/gzelashvili/PlayZone-ReservationService/internal/api/handlers/quick_reserve"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/api/middleware"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/config"
	reservationRepo "github.com/gzelashvili/PlayZone-ReservationService/internal/infra/storage/reservation"
	resourceRepo "github.com/gzelashvili/PlayZone-ReservationService/internal/infra/storage/resource"
	mailServiceClient "github.com/gzelashvili/PlayZone-ReservationService/internal/integrations/mailservice"
	"github.com/gzelashvili/PlayZone-ReservationService/internal/service/occupancy"
	reservationsService "github.com/gzelashvili/PlayZone-ReservationService/internal/service/reservations"
	createReservationUC "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/create_reservation"
	getDayScheduleUC "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/get_day_schedule"
	quickReserveUC "github.com/gzelashvili/PlayZone-ReservationService/internal/usecase/quick_reserve"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/dbmetrics"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/logger"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/metrics"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/simpletxmanager"
	"github.com/gzelashvili/PlayZone-ReservationService/pkg/txmanager"
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

	log.Info("Starting PlayZone-ReservationService...")
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

	// Инициализируем клиент почтового сервиса
	mailClient := mailServiceClient.NewClient(
		cfg.MailService.URL,
		time.Duration(cfg.MailService.Timeout)*time.Second,
		log,
	)
	log.Info("Mail service client initialized (url=%s, timeout=%ds)",
		cfg.MailService.URL, cfg.MailService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		reservationRepository *reservationRepo.Repository
		resourceRepository    *resourceRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)
		log.Info("Database metrics collection started")

		reservationRepository = reservationRepo.NewRepository(wrappedDB)
		resourceRepository = resourceRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		reservationRepository = reservationRepo.NewRepository(db)
		resourceRepository = resourceRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	reservationSvc := reservationsService.NewService(
		reservationRepository,
		resourceRepository,
		log,
	)

	occupancyTracker := occupancy.NewTracker(
		reservationRepository,
		resourceRepository,
		mailClient,
		occupancy.NewRealClock(),
		log,
		time.Duration(cfg.Occupancy.TickSeconds)*time.Second,
		time.Duration(cfg.Occupancy.RefreshSeconds)*time.Second,
	)

	// Инициализируем use cases
	createReservationUseCase := createReservationUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		txMgr,
		log,
		cfg.Booking.WindowStartMinute,
		cfg.Booking.WindowEndMinute,
	)

	quickReserveUseCase := quickReserveUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		txMgr,
		log,
		cfg.Booking.SlotWidthMinutes,
		cfg.Booking.WindowStartMinute,
		cfg.Booking.WindowEndMinute,
	)

	getDayScheduleUseCase := getDayScheduleUC.NewUseCase(
		reservationRepository,
		resourceRepository,
		log,
		cfg.Booking.WindowStartMinute,
		cfg.Booking.WindowEndMinute,
		cfg.Booking.SlotWidthMinutes,
	)

	// Инициализируем handlers
	getDaySchedule := getDayScheduleHandler.NewHandler(getDayScheduleUseCase, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	quickReserve := quickReserveHandler.NewHandler(quickReserveUseCase, log)
	deleteReservation := deleteReservationHandler.NewHandler(reservationSvc, log)
	markPaid := markPaidHandler.NewHandler(reservationSvc, log)
	getResourceReservations := getResourceReservationsHandler.NewHandler(reservationSvc, log)
	getLiveStatus := getLiveStatusHandler.NewHandler(occupancyTracker, log)

	// Запускаем фоновый трекер занятости
	trackerCtx, stopTracker := context.WithCancel(context.Background())
	go occupancyTracker.Run(trackerCtx)

	// Настраиваем роутер
	r := mux.NewRouter()

	r.Use(middleware.RequestID)

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

	// Сетка слотов филиала на день
	api.HandleFunc("/branches/{branchId}/schedule", getDaySchedule.Handle).Methods(http.MethodGet)

	// Live-занятость ресурсов филиала
	api.HandleFunc("/branches/{branchId}/live", getLiveStatus.Handle).Methods(http.MethodGet)

	// Бронирования ресурса на дату
	api.HandleFunc("/resources/{resourceId}/reservations", getResourceReservations.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования на выбранный диапазон
	protected.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)

	// Мгновенное бронирование "с этого момента"
	protected.HandleFunc("/reservations/quick", quickReserve.Handle).Methods(http.MethodPost)

	// Удаление бронирования
	protected.HandleFunc("/reservations/{reservationId}", deleteReservation.Handle).Methods(http.MethodDelete)

	// Отметка об оплате
	protected.HandleFunc("/reservations/{reservationId}/paid", markPaid.Handle).Methods(http.MethodPatch)

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

	// Останавливаем фоновый трекер занятости
	stopTracker()
	log.Info("Occupancy tracker stopped")

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

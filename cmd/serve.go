package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	cancelAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/cancel_appointment"
	createAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/create_appointment"
	getAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_available_slots"
	getCompanyConfigHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_company_config"
	getFreeIntervalsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_free_intervals"
	getStaffAppointmentsHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/get_staff_appointments"
	rescheduleAppointmentHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/reschedule_appointment"
	updateCompanyConfigHandler "github.com/m04kA/SMC-SchedulingService/internal/api/handlers/update_company_config"
	"github.com/m04kA/SMC-SchedulingService/internal/api/middleware"
	appointmentRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/appointment"
	configRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/config"
	holidayRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/holiday"
	scheduleRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/schedule"
	serviceRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/service"
	appointmentsService "github.com/m04kA/SMC-SchedulingService/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SchedulingService/internal/service/catalog"
	configService "github.com/m04kA/SMC-SchedulingService/internal/service/config"
	bookAppointmentUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/book_appointment"
	getAvailableSlotsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_available_slots"
	getFreeIntervalsUC "github.com/m04kA/SMC-SchedulingService/internal/usecase/get_free_intervals"
	"github.com/m04kA/SMC-SchedulingService/migrations"
	"github.com/m04kA/SMC-SchedulingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/metrics"
	"github.com/m04kA/SMC-SchedulingService/pkg/simpletxmanager"
	"github.com/m04kA/SMC-SchedulingService/pkg/txmanager"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrateUp bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context(), *configPath, migrateUp)
		},
	}
	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "apply database migrations before starting")

	return cmd
}

func serve(ctx context.Context, configPath string, migrateUp bool) error {
	cfg, log, db, err := bootstrap(configPath)
	if err != nil {
		return err
	}
	defer log.Close()
	defer db.Close()

	log.Info("Starting SMC-SchedulingService %s...", Version)

	if migrateUp {
		applied, err := migrations.Up(ctx, db, log)
		if err != nil {
			return fmt.Errorf("failed to apply migrations: %w", err)
		}
		log.Info("Migrations applied: %d", applied)
	}

	location, err := cfg.App.Location()
	if err != nil {
		return err
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})
	defer close(stopMetricsCh)

	// Репозитории работают через executor: с метриками или напрямую с *sql.DB
	var (
		executor  dbmetrics.DBExecutor
		txManager *txmanager.TransactionManager
	)
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		executor = wrappedDB
		txManager = txmanager.NewTransactionManager(wrappedDB)
		log.Info("Metrics enabled at %s, database metrics collection started", cfg.Metrics.Path)
	} else {
		executor = db
		txManager = simpletxmanager.NewTransactionManager(db)
	}

	// Репозитории
	appointmentRepository := appointmentRepo.NewRepository(executor)
	configRepository := configRepo.NewRepository(executor)
	scheduleRepository := scheduleRepo.NewRepository(executor)
	holidayRepository := holidayRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)

	// Сервисы
	catalogSvc := catalogService.NewService(serviceRepository, log)
	appointmentsSvc := appointmentsService.NewService(appointmentRepository, location, log)
	configSvc := configService.NewService(configRepository, log)

	// Use cases
	var freeIntervalsMetrics getFreeIntervalsUC.Metrics
	if metricsCollector != nil {
		freeIntervalsMetrics = metricsCollector
	}
	freeIntervalsUseCase := getFreeIntervalsUC.NewUseCase(
		configRepository,
		scheduleRepository,
		holidayRepository,
		appointmentRepository,
		freeIntervalsMetrics,
		log,
	)
	availableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		catalogSvc,
		freeIntervalsUseCase,
		configRepository,
		log,
	)
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(
		catalogSvc,
		freeIntervalsUseCase,
		appointmentRepository,
		txManager,
		location,
		log,
	)

	// Handlers
	getFreeIntervals := getFreeIntervalsHandler.NewHandler(freeIntervalsUseCase, location, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(availableSlotsUseCase, location, log)
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, location, log)
	rescheduleAppointment := rescheduleAppointmentHandler.NewHandler(bookAppointmentUseCase, location, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getStaffAppointments := getStaffAppointmentsHandler.NewHandler(appointmentsSvc, location, log)
	getCompanyConfig := getCompanyConfigHandler.NewHandler(configSvc, log)
	updateCompanyConfig := updateCompanyConfigHandler.NewHandler(configSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}).Methods(http.MethodGet)

	// Все маршруты API требуют X-Company-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	if cfg.RateLimit.Enabled {
		trustedProxies, err := cfg.RateLimit.TrustedProxyPrefixes()
		if err != nil {
			return err
		}
		limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, time.Duration(cfg.RateLimit.TTL)*time.Second, trustedProxies)
		api.Use(limiter.Middleware)
		log.Info("Rate limiting enabled: rps=%.1f, burst=%d, trusted proxies=%d", cfg.RateLimit.RPS, cfg.RateLimit.Burst, len(trustedProxies))
	}
	api.Use(middleware.Auth)

	// --- Доступность ---
	api.HandleFunc("/locations/{locationId}/staff/{staffId}/free-intervals",
		getFreeIntervals.Handle).Methods(http.MethodGet)
	api.HandleFunc("/locations/{locationId}/staff/{staffId}/available-slots",
		getAvailableSlots.Handle).Methods(http.MethodGet)

	// --- Записи ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", rescheduleAppointment.Handle).Methods(http.MethodPut)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/staff/{staffId}/appointments", getStaffAppointments.Handle).Methods(http.MethodGet)

	// --- Настройки компании ---
	api.HandleFunc("/config", getCompanyConfig.Handle).Methods(http.MethodGet)
	api.HandleFunc("/config", updateCompanyConfig.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serverErr := make(chan error, 1)
	go func() {
		log.Info("Starting server on %s (timezone=%s)", addr, location)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("server failed to start: %w", err)
		}
	case <-ctx.Done():
	}

	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

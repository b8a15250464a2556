package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/spf13/pflag"

	"github.com/m04kA/incubator-booking/internal/api"
	bookingsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/bookings"
	createBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/create_booking"
	generateSlotsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/generate_slots"
	getAvailableSlotsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/get_booking"
	getBookingQRHandler "github.com/m04kA/incubator-booking/internal/api/handlers/get_booking_qr"
	locationsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/locations"
	manageBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/manage_booking"
	pagesHandler "github.com/m04kA/incubator-booking/internal/api/handlers/pages"
	reviewBookingHandler "github.com/m04kA/incubator-booking/internal/api/handlers/review_booking"
	sessionHandler "github.com/m04kA/incubator-booking/internal/api/handlers/session"
	slotsHandler "github.com/m04kA/incubator-booking/internal/api/handlers/slots"
	"github.com/m04kA/incubator-booking/internal/api/middleware"
	"github.com/m04kA/incubator-booking/internal/config"
	"github.com/m04kA/incubator-booking/internal/integrations/notifier"
	authService "github.com/m04kA/incubator-booking/internal/service/auth"
	bookingsService "github.com/m04kA/incubator-booking/internal/service/bookings"
	locationsService "github.com/m04kA/incubator-booking/internal/service/locations"
	pagesService "github.com/m04kA/incubator-booking/internal/service/pages"
	slotsService "github.com/m04kA/incubator-booking/internal/service/slots"
	bootstrapUC "github.com/m04kA/incubator-booking/internal/usecase/bootstrap"
	createBookingUC "github.com/m04kA/incubator-booking/internal/usecase/create_booking"
	generateSlotsUC "github.com/m04kA/incubator-booking/internal/usecase/generate_slots"
	getAvailableSlotsUC "github.com/m04kA/incubator-booking/internal/usecase/get_available_slots"
	manageBookingUC "github.com/m04kA/incubator-booking/internal/usecase/manage_booking"
	reviewBookingUC "github.com/m04kA/incubator-booking/internal/usecase/review_booking"
	"github.com/m04kA/incubator-booking/pkg/logger"
	"github.com/m04kA/incubator-booking/pkg/metrics"
)

func main() {
	configPath := pflag.StringP("config", "c", "config.toml", "path to TOML config")
	bootstrapOnly := pflag.Bool("bootstrap", false, "apply schema, seed sample data and exit")
	pflag.Parse()

	// Загружаем конфигурацию
	cfg, err := config.Load(*configPath)
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

	log.Info("Starting incubator-booking...")
	log.Info("Configuration loaded from %s (driver=%s)", *configPath, cfg.Database.Driver)

	tz, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Unknown timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Хранилище
	var store *storage
	switch cfg.Database.Driver {
	case config.DriverMemory:
		store = newMemoryStorage()
		log.Warn("Using in-memory storage, data is lost on restart")
	default:
		store, err = newPostgresStorage(cfg.Database, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh, log)
		if err != nil {
			log.Fatal("Failed to connect to database: %v", err)
		}
	}
	defer func() {
		if err := store.close(); err != nil {
			log.Error("Failed to close storage: %v", err)
		}
	}()

	// Схема и начальные данные
	if cfg.Database.AutoMigrate || *bootstrapOnly || cfg.Database.Driver == config.DriverMemory {
		bootstrap := bootstrapUC.NewUseCase(store.migrator, store.locations, store.pages, store.txManager, log)
		seeded, err := bootstrap.Execute(context.Background())
		if err != nil {
			log.Fatal("Bootstrap failed: %v", err)
		}
		log.Info("Bootstrap done: locations_seeded=%d, pages_seeded=%d", seeded.LocationsSeeded, seeded.PagesSeeded)
	}
	if *bootstrapOnly {
		return
	}

	// Уведомления: лог всегда, почта и Telegram по настройкам
	channels := []notifier.Channel{notifier.NewLogChannel(log)}
	if smtpCfg := cfg.Notifications.SMTP; smtpCfg.Enabled() {
		channels = append(channels, notifier.NewSMTPChannel(notifier.SMTPConfig{
			Server:   smtpCfg.Server,
			Port:     smtpCfg.Port,
			Username: smtpCfg.Username,
			Password: smtpCfg.Password,
			From:     smtpCfg.From,
			Timeout:  time.Duration(smtpCfg.Timeout) * time.Second,
		}))
		log.Info("SMTP notifications enabled (server=%s:%d)", smtpCfg.Server, smtpCfg.Port)
	}
	if tgCfg := cfg.Notifications.Telegram; tgCfg.Enabled() {
		telegram, err := notifier.NewTelegramChannel(tgCfg.BotToken, tgCfg.ChatID, log)
		if err != nil {
			log.Error("Telegram notifications disabled: %v", err)
		} else {
			channels = append(channels, telegram)
			log.Info("Telegram notifications enabled (chat_id=%d)", tgCfg.ChatID)
		}
	}
	notify := notifier.New(notifier.NewRenderer(cfg.Server.PublicURL, tz), log, channels...)

	// Инициализируем сервисы
	authSvc, err := authService.NewService(
		cfg.Auth.AdminPassword,
		cfg.Auth.SessionSecret,
		time.Duration(cfg.Auth.SessionTTL)*time.Second,
		log,
	)
	if err != nil {
		log.Fatal("Failed to initialize auth: %v", err)
	}
	locationSvc := locationsService.NewService(store.locations, store.slots, store.bookings, store.txManager, log)
	slotSvc := slotsService.NewService(store.slots, store.bookings, store.txManager, tz, log)
	bookingSvc := bookingsService.NewService(store.bookings, store.locations, tz, log)
	pageSvc := pagesService.NewService(store.pages, store.txManager, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		store.slots,
		store.locations,
		store.bookings,
		notify,
		store.txManager,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(store.locations, store.slots, log)
	generateSlotsUseCase := generateSlotsUC.NewUseCase(
		store.locations,
		store.slots,
		store.txManager,
		tz,
		cfg.Booking.RejectOverlappingSlots,
		log,
	)
	manageBookingUseCase := manageBookingUC.NewUseCase(store.bookings, store.slots, store.txManager, log)
	reviewBookingUseCase := reviewBookingUC.NewUseCase(store.bookings, store.slots, store.txManager, log)

	// Инициализируем handlers
	handlers := &api.Handlers{
		Locations:      locationsHandler.NewHandler(locationSvc, log),
		AvailableSlots: getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, tz, log),
		CreateBooking:  createBookingHandler.NewHandler(createBookingUseCase, cfg.Server.PublicURL, tz, log),
		GetBooking:     getBookingHandler.NewHandler(bookingSvc, log),
		BookingQR:      getBookingQRHandler.NewHandler(bookingSvc, cfg.Server.PublicURL, log),
		ManageBooking:  manageBookingHandler.NewHandler(manageBookingUseCase, tz, log),
		Pages:          pagesHandler.NewHandler(pageSvc, log),
		Session:        sessionHandler.NewHandler(authSvc, cfg.Auth.SecureCookie, log),
		GenerateSlots:  generateSlotsHandler.NewHandler(generateSlotsUseCase, tz, log),
		Slots:          slotsHandler.NewHandler(slotSvc, log),
		Bookings:       bookingsHandler.NewHandler(bookingSvc, log),
		ReviewBooking:  reviewBookingHandler.NewHandler(reviewBookingUseCase, tz, log),
	}

	opts := api.Options{
		Gate:           authSvc,
		Metrics:        metricsCollector,
		MetricsPath:    cfg.Metrics.Path,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
	}
	if cfg.RateLimit.Enabled {
		opts.RateLimiter = middleware.NewRateLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		log.Info("Rate limit enabled: %.1f req/min, burst=%d", cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	}

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(handlers, opts, log),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s (public url %s)", addr, cfg.Server.PublicURL)
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
	close(stopMetricsCh)

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

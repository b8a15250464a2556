package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/incubator-booking/internal/config"
	bookingRepo "github.com/m04kA/incubator-booking/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/incubator-booking/internal/infra/storage/location"
	"github.com/m04kA/incubator-booking/internal/infra/storage/memory"
	"github.com/m04kA/incubator-booking/internal/infra/storage/migrations"
	pageRepo "github.com/m04kA/incubator-booking/internal/infra/storage/page"
	slotRepo "github.com/m04kA/incubator-booking/internal/infra/storage/slot"
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
	"github.com/m04kA/incubator-booking/pkg/dbmetrics"
	"github.com/m04kA/incubator-booking/pkg/logger"
	"github.com/m04kA/incubator-booking/pkg/metrics"
	"github.com/m04kA/incubator-booking/pkg/simpletxmanager"
	"github.com/m04kA/incubator-booking/pkg/txmanager"
)

// Репозитории, которые нужны всем потребителям сразу.
// И postgres, и memory реализации удовлетворяют им целиком

type locationRepository interface {
	locationsService.LocationRepository
	bookingsService.LocationRepository
	createBookingUC.LocationRepository
	generateSlotsUC.LocationRepository
	getAvailableSlotsUC.LocationRepository
	bootstrapUC.LocationRepository
}

type slotRepository interface {
	locationsService.SlotRepository
	slotsService.SlotRepository
	createBookingUC.SlotRepository
	generateSlotsUC.SlotRepository
	getAvailableSlotsUC.SlotRepository
	manageBookingUC.SlotRepository
	reviewBookingUC.SlotRepository
}

type bookingRepository interface {
	locationsService.BookingRepository
	slotsService.BookingRepository
	bookingsService.BookingRepository
	createBookingUC.BookingRepository
	manageBookingUC.BookingRepository
	reviewBookingUC.BookingRepository
}

type pageRepository interface {
	pagesService.PageRepository
	bootstrapUC.PageRepository
}

type transactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// storage выбранное хранилище
type storage struct {
	locations locationRepository
	slots     slotRepository
	bookings  bookingRepository
	pages     pageRepository
	txManager transactionManager
	migrator  bootstrapUC.Migrator // nil для memory
	close     func() error
}

func newMemoryStorage() *storage {
	store := memory.NewStore()
	return &storage{
		locations: store.Locations(),
		slots:     store.Slots(),
		bookings:  store.Bookings(),
		pages:     store.Pages(),
		txManager: store.TxManager(),
		close:     func() error { return nil },
	}
}

// newPostgresStorage подключается к PostgreSQL; с метриками репозитории
// работают через dbmetrics обертку
func newPostgresStorage(
	cfg config.DatabaseConfig,
	metricsCollector *metrics.Metrics,
	serviceName string,
	stopMetricsCh <-chan struct{},
	log *logger.Logger,
) (*storage, error) {
	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)", cfg.Host, cfg.Port, cfg.DBName)

	s := &storage{
		migrator: migrations.NewMigrator(db),
		close:    db.Close,
	}

	if metricsCollector != nil {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, serviceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		s.locations = locationRepo.NewRepository(wrappedDB)
		s.slots = slotRepo.NewRepository(wrappedDB)
		s.bookings = bookingRepo.NewRepository(wrappedDB)
		s.pages = pageRepo.NewRepository(wrappedDB)
		s.txManager = txmanager.NewTransactionManager(wrappedDB)
		return s, nil
	}

	s.locations = locationRepo.NewRepository(db)
	s.slots = slotRepo.NewRepository(db)
	s.bookings = bookingRepo.NewRepository(db)
	s.pages = pageRepo.NewRepository(db)
	s.txManager = simpletxmanager.NewTransactionManager(db)
	return s, nil
}

package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/incubator-booking/internal/domain"
	bookingRepo "github.com/m04kA/incubator-booking/internal/infra/storage/booking"
	locationRepo "github.com/m04kA/incubator-booking/internal/infra/storage/location"
	slotRepo "github.com/m04kA/incubator-booking/internal/infra/storage/slot"
)

// UseCase use case для создания бронирования
type UseCase struct {
	slotRepo       SlotRepository
	locationRepo   LocationRepository
	bookingRepo    BookingRepository
	notifier       Notifier
	txManager      TransactionManager
	tokenGenerator TokenGenerator
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	locationRepo LocationRepository,
	bookingRepo BookingRepository,
	notifier Notifier,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:       slotRepo,
		locationRepo:   locationRepo,
		bookingRepo:    bookingRepo,
		notifier:       notifier,
		txManager:      txManager,
		tokenGenerator: UUIDTokenGenerator{},
		logger:         logger,
	}
}

// WithTokenGenerator подменяет генератор токенов отмены
func (uc *UseCase) WithTokenGenerator(g TokenGenerator) *UseCase {
	uc.tokenGenerator = g
	return uc
}

// Execute выполняет use case создания бронирования
// Проверка и захват слота выполняются одной операцией в транзакции вместе с вставкой бронирования,
// поэтому из конкурентных попыток на один слот успешна только одна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Нормализация и валидация входных данных
	normalizeRequest(req)
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: slot=%d: %v", req.SlotID, err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: slot=%d, email=%s", req.SlotID, req.Email)

	var details *domain.BookingDetails

	// 2. Захватываем слот и создаем бронирование в транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		// 2.1. Получаем слот с блокировкой строки
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateBooking: slot id=%d not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get slot id=%d: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		if slot.IsBooked {
			uc.logger.Warn("CreateBooking: slot id=%d is already booked", req.SlotID)
			return ErrSlotNotAvailable
		}

		// 2.2. Помечаем слот занятым (условный UPDATE)
		if err := uc.slotRepo.MarkBooked(txCtx, slot.ID); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrSlotAlreadyBooked):
				uc.logger.Warn("CreateBooking: slot id=%d was booked concurrently", req.SlotID)
				return ErrSlotNotAvailable
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateBooking: failed to mark slot id=%d booked: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to mark slot booked: %v", ErrInternal, err)
		}
		slot.IsBooked = true

		// 2.3. Площадка нужна для подтверждения
		location, err := uc.locationRepo.GetByID(txCtx, slot.LocationID)
		if err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				uc.logger.Error("CreateBooking: slot id=%d references missing location id=%d", slot.ID, slot.LocationID)
			}
			return fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
		}

		// 2.4. Создаем бронирование в статусе pending
		booking := &domain.Booking{
			SlotID:       slot.ID,
			Name:         req.Name,
			Surname:      req.Surname,
			Email:        req.Email,
			Phone:        req.Phone,
			City:         req.City,
			PostalCode:   req.PostalCode,
			ProjectStage: req.ProjectStage,
			Sector:       req.Sector,
			Description:  req.Description,
			Needs:        req.Needs,
			Status:       domain.StatusPending,
			CancelToken:  uc.tokenGenerator.NewToken(),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotAlreadyBooked) {
				uc.logger.Warn("CreateBooking: slot id=%d already has an active booking", req.SlotID)
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		details = &domain.BookingDetails{
			Booking:  *created,
			Slot:     *slot,
			Location: *location,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for slot id=%d",
		details.Booking.ID, details.Slot.ID)

	// 3. Уведомление отправляется после фиксации; его ошибка не влияет на бронирование
	if err := uc.notifier.Notify(context.WithoutCancel(ctx), details); err != nil {
		uc.logger.Warn("CreateBooking: notification failed for booking id=%d: %v", details.Booking.ID, err)
	}

	return &Response{Details: details}, nil
}

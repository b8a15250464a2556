package manage_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/incubator-booking/internal/domain"
	bookingRepo "github.com/m04kA/incubator-booking/internal/infra/storage/booking"
)

// UseCase use case для самостоятельной отмены и переноса бронирования по токену
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет действие над бронированием
// cancel: бронирование отменяется, слот освобождается
// reschedule: то же самое, плюс в ответе площадка для выбора нового слота
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("ManageBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("ManageBooking: action=%s", req.Action)

	var (
		changed bool
		details *domain.BookingDetails
	)

	// 2. Отменяем бронирование и освобождаем слот в одной транзакции
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByCancelToken(txCtx, req.Token)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ManageBooking: unknown cancel token")
				return ErrBookingNotFound
			}
			uc.logger.Error("ManageBooking: failed to get booking by token: %v", err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		// Перенос возможен только для действующей заявки
		if req.Action == ActionReschedule && !booking.IsActive() {
			uc.logger.Warn("ManageBooking: booking id=%d is %s, cannot reschedule", booking.ID, booking.Status)
			return fmt.Errorf("%w: cannot reschedule %s booking", ErrInvalidTransition, booking.Status)
		}

		changed, err = domain.Transition(booking.Status, domain.StatusCancelled)
		if err != nil {
			uc.logger.Warn("ManageBooking: booking id=%d is %s, cannot cancel", booking.ID, booking.Status)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, domain.StatusCancelled)
		}

		if changed {
			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, domain.StatusCancelled); err != nil {
				uc.logger.Error("ManageBooking: failed to cancel booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			if err := uc.slotRepo.Release(txCtx, booking.SlotID); err != nil {
				uc.logger.Error("ManageBooking: failed to release slot id=%d: %v", booking.SlotID, err)
				return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
			}
		}

		details, err = uc.bookingRepo.GetDetailsByID(txCtx, booking.ID)
		if err != nil {
			return fmt.Errorf("%w: failed to load booking details: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := &Response{Details: details, Changed: changed}
	if req.Action == ActionReschedule {
		resp.LocationID = details.Location.ID
	}

	uc.logger.Info("ManageBooking: booking id=%d %s, slot id=%d released=%t",
		details.Booking.ID, req.Action, details.Slot.ID, changed)

	return resp, nil
}

package review_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/incubator-booking/internal/domain"
	bookingRepo "github.com/m04kA/incubator-booking/internal/infra/storage/booking"
)

// UseCase use case для принятия и отклонения заявок сотрудником
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

// Execute применяет решение к бронированию
// Отклонение активной заявки освобождает слот в той же транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req.BookingID <= 0 {
		return nil, fmt.Errorf("%w: bookingID must be positive", ErrInvalidInput)
	}
	target, err := req.Decision.TargetStatus()
	if err != nil {
		return nil, err
	}

	uc.logger.Info("ReviewBooking: booking=%d, decision=%s", req.BookingID, req.Decision)

	var (
		changed bool
		details *domain.BookingDetails
	)

	// 2. Меняем статус в транзакции
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := uc.bookingRepo.GetByID(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				uc.logger.Warn("ReviewBooking: booking id=%d not found", req.BookingID)
				return ErrBookingNotFound
			}
			uc.logger.Error("ReviewBooking: failed to get booking id=%d: %v", req.BookingID, err)
			return fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
		}

		changed, err = domain.Transition(booking.Status, target)
		if err != nil {
			uc.logger.Warn("ReviewBooking: booking id=%d cannot go from %s to %s", booking.ID, booking.Status, target)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, target)
		}

		if changed {
			if err := uc.bookingRepo.UpdateStatus(txCtx, booking.ID, target); err != nil {
				uc.logger.Error("ReviewBooking: failed to update booking id=%d: %v", booking.ID, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}

			if domain.ReleasesSlot(booking.Status, target) {
				if err := uc.slotRepo.Release(txCtx, booking.SlotID); err != nil {
					uc.logger.Error("ReviewBooking: failed to release slot id=%d: %v", booking.SlotID, err)
					return fmt.Errorf("%w: failed to release slot: %v", ErrInternal, err)
				}
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

	if changed {
		uc.logger.Info("ReviewBooking: booking id=%d is now %s", req.BookingID, target)
	} else {
		uc.logger.Info("ReviewBooking: booking id=%d already %s", req.BookingID, target)
	}

	return &Response{Details: details, Changed: changed}, nil
}

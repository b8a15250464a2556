package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
	slotRepo "github.com/m04kA/incubator-booking/internal/infra/storage/slot"
	"github.com/m04kA/incubator-booking/internal/service/slots/models"
)

// Service сервис для управления слотами
type Service struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TransactionManager
	timezone    *time.Location
	logger      Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	timezone *time.Location,
	logger Logger,
) *Service {
	return &Service{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		timezone:    timezone,
		logger:      logger,
	}
}

// List возвращает слоты, новые первыми
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	list, err := s.slotRepo.List(ctx, domain.SlotFilter{LocationID: req.LocationID})
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainSlots(list, s.timezone), nil
}

// Delete удаляет слот вместе с его бронированиями
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteSlotResponse, error) {
	resp := &models.DeleteSlotResponse{}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		if _, err := s.slotRepo.GetByID(txCtx, id); err != nil {
			return err
		}

		var err error
		if resp.DeletedBookings, err = s.bookingRepo.DeleteBySlot(txCtx, id); err != nil {
			return fmt.Errorf("delete bookings: %w", err)
		}
		return s.slotRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("Delete: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("Delete: failed to delete slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - %v", ErrInternal, err)
	}

	s.logger.Info("Delete: slot id=%d deleted with %d bookings", id, resp.DeletedBookings)
	return resp, nil
}

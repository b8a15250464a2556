package locations

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/incubator-booking/internal/domain"
	locationRepo "github.com/m04kA/incubator-booking/internal/infra/storage/location"
	"github.com/m04kA/incubator-booking/internal/service/locations/models"
)

// Service сервис для работы с площадками
type Service struct {
	locationRepo LocationRepository
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	txManager    TransactionManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса площадок
func NewService(
	locationRepo LocationRepository,
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		locationRepo: locationRepo,
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// List возвращает все площадки по названию
func (s *Service) List(ctx context.Context) (*models.LocationListResponse, error) {
	list, err := s.locationRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLocations(list), nil
}

// GetByID получает площадку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.LocationResponse, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("GetByID: location id=%d not found", id)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("GetByID: repository error for location id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainLocation(location), nil
}

// Create создает площадку
func (s *Service) Create(ctx context.Context, req *models.CreateLocationRequest) (*models.LocationResponse, error) {
	location := &domain.Location{
		Name:        strings.TrimSpace(req.Name),
		City:        strings.TrimSpace(req.City),
		Description: strings.TrimSpace(req.Description),
	}
	if location.Name == "" {
		s.logger.Warn("Create: empty location name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.locationRepo.Create(ctx, location)
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: location id=%d created (%s)", created.ID, created.DisplayName())
	return models.FromDomainLocation(created), nil
}

// Update обновляет переданные поля площадки
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateLocationRequest) (*models.LocationResponse, error) {
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		s.logger.Warn("Update: empty location name for id=%d", id)
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
	}

	var updated *domain.Location
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		location, err := s.locationRepo.GetByID(txCtx, id)
		if err != nil {
			return err
		}

		if req.Name != nil {
			location.Name = strings.TrimSpace(*req.Name)
		}
		if req.City != nil {
			location.City = strings.TrimSpace(*req.City)
		}
		if req.Description != nil {
			location.Description = strings.TrimSpace(*req.Description)
		}

		updated, err = s.locationRepo.Update(txCtx, location)
		return err
	})
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("Update: location id=%d not found", id)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("Update: repository error for location id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: location id=%d updated", id)
	return models.FromDomainLocation(updated), nil
}

// Delete удаляет площадку вместе с её слотами и их бронированиями
func (s *Service) Delete(ctx context.Context, id int64) (*models.DeleteLocationResponse, error) {
	resp := &models.DeleteLocationResponse{}

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		// Блокируем площадку и проверяем существование
		if _, err := s.locationRepo.GetByID(txCtx, id); err != nil {
			return err
		}

		var err error
		if resp.DeletedBookings, err = s.bookingRepo.DeleteByLocation(txCtx, id); err != nil {
			return fmt.Errorf("delete bookings: %w", err)
		}
		if resp.DeletedSlots, err = s.slotRepo.DeleteByLocation(txCtx, id); err != nil {
			return fmt.Errorf("delete slots: %w", err)
		}
		return s.locationRepo.Delete(txCtx, id)
	})
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			s.logger.Warn("Delete: location id=%d not found", id)
			return nil, ErrLocationNotFound
		}
		s.logger.Error("Delete: failed to delete location id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: Delete - %v", ErrInternal, err)
	}

	s.logger.Info("Delete: location id=%d deleted with %d slots and %d bookings",
		id, resp.DeletedSlots, resp.DeletedBookings)
	return resp, nil
}

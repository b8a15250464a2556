package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	locationRepo "github.com/m04kA/incubator-booking/internal/infra/storage/location"
)

// UseCase use case получения свободных слотов площадки
type UseCase struct {
	locationRepo LocationRepository
	slotRepo     SlotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	locationRepo LocationRepository,
	slotRepo SlotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		locationRepo: locationRepo,
		slotRepo:     slotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithTimeProvider подменяет источник текущего времени
func (uc *UseCase) WithTimeProvider(tp TimeProvider) *UseCase {
	uc.timeProvider = tp
	return uc
}

// Execute возвращает незанятые слоты площадки, которые начинаются не раньше момента отсчета
// Занятый слот никогда не попадает в выдачу
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Момент отсчета
	at := uc.timeProvider.Now()
	if req.At != nil {
		at = *req.At
	}

	// 3. Проверяем площадку
	location, err := uc.locationRepo.GetByID(ctx, req.LocationID)
	if err != nil {
		if errors.Is(err, locationRepo.ErrLocationNotFound) {
			uc.logger.Warn("GetAvailableSlots: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 4. Получаем свободные слоты
	slots, err := uc.slotRepo.ListAvailable(ctx, req.LocationID, at)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots for location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: location id=%d, %d slots available", req.LocationID, len(slots))
	return &Response{Location: location, Slots: slots}, nil
}

package generate_slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
	locationRepo "github.com/m04kA/incubator-booking/internal/infra/storage/location"
)

// UseCase use case генерации слотов площадки из диапазона времени
type UseCase struct {
	locationRepo   LocationRepository
	slotRepo       SlotRepository
	txManager      TransactionManager
	timezone       *time.Location
	rejectOverlaps bool
	logger         Logger
}

// NewUseCase создает новый экземпляр use case
// timezone - часовой пояс, в котором сотрудник задает время (nil - UTC)
// rejectOverlaps - запрещать слоты, пересекающиеся с уже существующими
func NewUseCase(
	locationRepo LocationRepository,
	slotRepo SlotRepository,
	txManager TransactionManager,
	timezone *time.Location,
	rejectOverlaps bool,
	logger Logger,
) *UseCase {
	if timezone == nil {
		timezone = time.UTC
	}
	return &UseCase{
		locationRepo:   locationRepo,
		slotRepo:       slotRepo,
		txManager:      txManager,
		timezone:       timezone,
		rejectOverlaps: rejectOverlaps,
		logger:         logger,
	}
}

// Execute создает слоты по одному часу, покрывающие [StartTime, EndTime) в указанную дату
// Все слоты создаются в одной транзакции: либо все, либо ни одного
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: location=%d, date=%s, range=%s-%s",
		req.LocationID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Переводим время суток в моменты времени в часовом поясе площадки
	start, err := req.StartTime.On(req.Date, uc.timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	end, err := req.EndTime.On(req.Date, uc.timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 3. Нарезаем диапазон на слоты
	slots := splitRange(req.LocationID, start, end)

	var result *Response

	// 4. Проверяем площадку и сохраняем слоты в транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		location, err := uc.locationRepo.GetByID(txCtx, req.LocationID)
		if err != nil {
			if errors.Is(err, locationRepo.ErrLocationNotFound) {
				uc.logger.Warn("GenerateSlots: location id=%d not found", req.LocationID)
				return ErrLocationNotFound
			}
			uc.logger.Error("GenerateSlots: failed to get location id=%d: %v", req.LocationID, err)
			return fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
		}

		// 4.1. Необязательная проверка пересечений с существующими слотами
		if uc.rejectOverlaps && len(slots) > 0 {
			overlapping, err := uc.slotRepo.CountOverlapping(txCtx, req.LocationID, slots[0].Start, slots[len(slots)-1].End)
			if err != nil {
				uc.logger.Error("GenerateSlots: failed to count overlapping slots: %v", err)
				return fmt.Errorf("%w: failed to count overlapping slots: %v", ErrInternal, err)
			}
			if overlapping > 0 {
				uc.logger.Warn("GenerateSlots: %d existing slots overlap range at location id=%d", overlapping, req.LocationID)
				return ErrOverlappingSlots
			}
		}

		// 4.2. Сохраняем слоты
		created, err := uc.slotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			uc.logger.Error("GenerateSlots: failed to create slots: %v", err)
			return fmt.Errorf("%w: failed to create slots: %v", ErrInternal, err)
		}

		result = &Response{Location: location, Slots: created}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("GenerateSlots: created %d slots for location id=%d", result.Count(), req.LocationID)
	return result, nil
}

package generate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LocationID <= 0 {
		return fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	if !req.EndTime.IsAfter(req.StartTime) {
		return fmt.Errorf("%w: %s-%s", ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	return nil
}

// splitRange нарезает [start, end) на последовательные слоты длиной domain.SlotDuration
// Остаток короче одного слота отбрасывается
func splitRange(locationID int64, start, end time.Time) []domain.Slot {
	slots := make([]domain.Slot, 0)
	for current := start; !current.Add(domain.SlotDuration).After(end); current = current.Add(domain.SlotDuration) {
		slots = append(slots, domain.Slot{
			LocationID: locationID,
			Start:      current,
			End:        current.Add(domain.SlotDuration),
		})
	}
	return slots
}

package generate_slots

import (
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/pkg/types"
)

// Request запрос на генерацию слотов
type Request struct {
	LocationID int64            // ID площадки
	Date       time.Time        // Дата (используются только год, месяц, день)
	StartTime  types.TimeString // Начало диапазона, например "09:00"
	EndTime    types.TimeString // Конец диапазона (не включительно), например "12:00"
}

// Response созданные слоты
type Response struct {
	Location *domain.Location
	Slots    []domain.Slot
}

// Count количество созданных слотов
func (r *Response) Count() int {
	return len(r.Slots)
}

package get_available_slots

import (
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// Request запрос свободных слотов площадки
type Request struct {
	LocationID int64
	At         *time.Time // Момент отсчета; nil - текущее время
}

// Response площадка и её свободные слоты по возрастанию начала
type Response struct {
	Location *domain.Location
	Slots    []*domain.Slot
}

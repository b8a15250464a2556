package domain

import "time"

// Slot интервал времени на площадке, который можно забронировать
type Slot struct {
	ID         int64
	LocationID int64
	Start      time.Time
	End        time.Time
	IsBooked   bool
	CreatedAt  time.Time
}

// IsAvailableAt true, если слот свободен и ещё не начался к моменту now
func (s *Slot) IsAvailableAt(now time.Time) bool {
	return !s.IsBooked && !s.Start.Before(now)
}

// Overlaps проверяет пересечение с интервалом [start, end)
func (s *Slot) Overlaps(start, end time.Time) bool {
	return s.Start.Before(end) && start.Before(s.End)
}

// SlotFilter фильтр для списка слотов
type SlotFilter struct {
	LocationID    *int64     // Только слоты площадки (опционально)
	From          *time.Time // Начало не раньше (опционально)
	OnlyAvailable bool       // Только не забронированные
}

package domain

import "time"

// Location площадка инкубатора, на которой проводятся встречи
// Владеет слотами: удаление площадки удаляет её слоты и их бронирования
type Location struct {
	ID          int64
	Name        string
	City        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// DisplayName название площадки вместе с городом ("Lyon, Lyon")
func (l *Location) DisplayName() string {
	if l.City == "" {
		return l.Name
	}
	return l.Name + ", " + l.City
}

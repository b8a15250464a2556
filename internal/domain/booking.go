package domain

import (
	"fmt"
	"time"
)

// BookingStatus статус бронирования
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusAccepted  BookingStatus = "accepted"
	StatusRefused   BookingStatus = "refused"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking заявка посетителя на встречу в конкретном слоте
type Booking struct {
	ID     int64
	SlotID int64

	// Обязательные поля
	Name    string
	Surname string
	Email   string
	Phone   string

	// Необязательные поля (пустая строка - не указано)
	City         string
	PostalCode   string
	ProjectStage string
	Sector       string
	Description  string
	Needs        string

	Status      BookingStatus
	CancelToken string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive true, если бронирование удерживает слот
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// FullName имя и фамилия
func (b *Booking) FullName() string {
	return b.Name + " " + b.Surname
}

// IsActive true для статусов, при которых слот занят
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusAccepted
}

// IsValid проверяет, что статус известен
func (s BookingStatus) IsValid() bool {
	for _, st := range AllStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// ParseBookingStatus разбирает статус из строки
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("unknown booking status %q", s)
	}
	return status, nil
}

// BookingDetails бронирование вместе со слотом и площадкой
type BookingDetails struct {
	Booking  Booking
	Slot     Slot
	Location Location
}

// BookingFilter фильтр для списка бронирований
type BookingFilter struct {
	Status     *BookingStatus // Фильтр по статусу (опционально)
	LocationID *int64         // Фильтр по площадке (опционально)
}

package domain

import "time"

// SlotDuration длительность одного слота
const SlotDuration = time.Hour

// DefaultTimezone часовой пояс, в котором сотрудники задают время слотов
const DefaultTimezone = "Europe/Paris"

// Форматы даты и времени
const (
	TimeFormat     = "15:04"            // HH:MM
	DateFormat     = "2006-01-02"       // YYYY-MM-DD
	DateTimeFormat = "2006-01-02 15:04" // для выгрузки
)

// AllStatuses все статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
	StatusRefused,
	StatusCancelled,
}

// ActiveStatuses статусы, при которых слот считается занятым
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusAccepted,
}

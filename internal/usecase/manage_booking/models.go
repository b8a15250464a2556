package manage_booking

import "github.com/m04kA/incubator-booking/internal/domain"

// Action действие владельца токена
type Action string

const (
	ActionCancel     Action = "cancel"
	ActionReschedule Action = "reschedule"
)

// Request модель запроса
type Request struct {
	Token  string
	Action Action
}

// Response модель ответа
type Response struct {
	Details    *domain.BookingDetails
	Changed    bool  // false, если бронирование уже было отменено
	LocationID int64 // площадка, на которой выбирается новый слот
}

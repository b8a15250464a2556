package create_booking

import "github.com/m04kA/incubator-booking/internal/domain"

// Request модель запроса на создание бронирования
type Request struct {
	SlotID int64 // ID выбранного слота

	// Обязательные поля
	Name    string
	Surname string
	Email   string
	Phone   string

	// Необязательные поля
	City         string
	PostalCode   string
	ProjectStage string
	Sector       string
	Description  string
	Needs        string
}

// Response созданное бронирование вместе со слотом и площадкой
type Response struct {
	Details *domain.BookingDetails
}

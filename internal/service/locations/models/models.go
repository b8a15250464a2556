package models

import (
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// Request модели

// CreateLocationRequest запрос на создание площадки
type CreateLocationRequest struct {
	Name        string `json:"name"`
	City        string `json:"city"`
	Description string `json:"description"`
}

// UpdateLocationRequest запрос на обновление площадки
// Все поля опциональны - обновляются только переданные значения
type UpdateLocationRequest struct {
	Name        *string `json:"name,omitempty"`
	City        *string `json:"city,omitempty"`
	Description *string `json:"description,omitempty"`
}

// Response модели

// LocationResponse ответ с данными площадки
type LocationResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	City        string    `json:"city"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// LocationListResponse ответ со списком площадок
type LocationListResponse struct {
	Locations []LocationResponse `json:"locations"`
}

// DeleteLocationResponse итог каскадного удаления
type DeleteLocationResponse struct {
	DeletedSlots    int64 `json:"deletedSlots"`
	DeletedBookings int64 `json:"deletedBookings"`
}

// FromDomainLocation конвертирует domain модель в DTO
func FromDomainLocation(l *domain.Location) *LocationResponse {
	if l == nil {
		return nil
	}
	return &LocationResponse{
		ID:          l.ID,
		Name:        l.Name,
		City:        l.City,
		Description: l.Description,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

// FromDomainLocations конвертирует список площадок
func FromDomainLocations(list []*domain.Location) *LocationListResponse {
	resp := &LocationListResponse{Locations: make([]LocationResponse, 0, len(list))}
	for _, l := range list {
		resp.Locations = append(resp.Locations, *FromDomainLocation(l))
	}
	return resp
}

package models

import (
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// ListSlotsRequest фильтр списка слотов для сотрудников
type ListSlotsRequest struct {
	LocationID *int64 `json:"locationId,omitempty"`
}

// SlotResponse ответ с данными слота
// Время переводится в часовой пояс площадок
type SlotResponse struct {
	ID         int64     `json:"id"`
	LocationID int64     `json:"locationId"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Date       string    `json:"date"`      // "2025-03-01"
	StartTime  string    `json:"startTime"` // "10:00"
	EndTime    string    `json:"endTime"`   // "11:00"
	IsBooked   bool      `json:"isBooked"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// DeleteSlotResponse итог каскадного удаления
type DeleteSlotResponse struct {
	DeletedBookings int64 `json:"deletedBookings"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot, loc *time.Location) SlotResponse {
	start := s.Start.In(loc)
	end := s.End.In(loc)
	return SlotResponse{
		ID:         s.ID,
		LocationID: s.LocationID,
		Start:      start,
		End:        end,
		Date:       start.Format(domain.DateFormat),
		StartTime:  start.Format(domain.TimeFormat),
		EndTime:    end.Format(domain.TimeFormat),
		IsBooked:   s.IsBooked,
	}
}

// FromDomainSlots конвертирует список слотов
func FromDomainSlots(list []*domain.Slot, loc *time.Location) *SlotListResponse {
	resp := &SlotListResponse{Slots: make([]SlotResponse, 0, len(list))}
	for _, s := range list {
		resp.Slots = append(resp.Slots, FromDomainSlot(s, loc))
	}
	return resp
}

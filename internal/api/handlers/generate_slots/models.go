package generate_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
	slotModels "github.com/m04kA/incubator-booking/internal/service/slots/models"
	generateSlots "github.com/m04kA/incubator-booking/internal/usecase/generate_slots"
	"github.com/m04kA/incubator-booking/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	Date      string `json:"date"`      // "2025-03-01"
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "12:00"
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	Message string                    `json:"message"`
	Count   int                       `json:"count"`
	Slots   []slotModels.SlotResponse `json:"slots"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом даты и времени)
func (r *GenerateSlotsRequest) ToUseCaseRequest(locationID int64) (*generateSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		LocationID: locationID,
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response, tz *time.Location) *GenerateSlotsResponse {
	slots := make([]slotModels.SlotResponse, 0, resp.Count())
	for i := range resp.Slots {
		slots = append(slots, slotModels.FromDomainSlot(&resp.Slots[i], tz))
	}

	return &GenerateSlotsResponse{
		Message: createdMessage(resp.Count()),
		Count:   resp.Count(),
		Slots:   slots,
	}
}

// createdMessage сообщение для сотрудника: "1 créneau créé", "3 créneaux créés"
func createdMessage(count int) string {
	if count > 1 {
		return fmt.Sprintf("%d créneaux créés", count)
	}
	return fmt.Sprintf("%d créneau créé", count)
}

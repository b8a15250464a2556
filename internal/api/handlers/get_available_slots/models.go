package get_available_slots

import (
	"time"

	locationModels "github.com/m04kA/incubator-booking/internal/service/locations/models"
	slotModels "github.com/m04kA/incubator-booking/internal/service/slots/models"
	getAvailableSlots "github.com/m04kA/incubator-booking/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Location *locationModels.LocationResponse `json:"location"`
	Slots    []slotModels.SlotResponse        `json:"slots"`
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
// at - необязательный момент отсчета в RFC3339
func ToUseCaseRequest(locationID int64, at string) (*getAvailableSlots.Request, error) {
	req := &getAvailableSlots.Request{LocationID: locationID}
	if at == "" {
		return req, nil
	}

	parsed, err := time.Parse(time.RFC3339, at)
	if err != nil {
		return nil, err
	}
	req.At = &parsed

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response, tz *time.Location) *AvailableSlotsResponse {
	return &AvailableSlotsResponse{
		Location: locationModels.FromDomainLocation(resp.Location),
		Slots:    slotModels.FromDomainSlots(resp.Slots, tz).Slots,
	}
}

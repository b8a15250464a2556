package review_booking

import (
	"fmt"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// Decision решение сотрудника по заявке
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionRefuse Decision = "refuse"
)

// TargetStatus статус, в который переводит решение
func (d Decision) TargetStatus() (domain.BookingStatus, error) {
	switch d {
	case DecisionAccept:
		return domain.StatusAccepted, nil
	case DecisionRefuse:
		return domain.StatusRefused, nil
	}
	return "", fmt.Errorf("%w: unknown decision %q", ErrInvalidInput, d)
}

// Request модель запроса
type Request struct {
	BookingID int64
	Decision  Decision
}

// Response модель ответа
type Response struct {
	Details *domain.BookingDetails
	Changed bool // false, если решение уже было применено
}

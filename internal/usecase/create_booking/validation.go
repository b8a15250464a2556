package create_booking

import (
	"fmt"
	"net/mail"
	"strings"
)

// normalizeRequest обрезает пробелы во всех текстовых полях
func normalizeRequest(req *Request) {
	for _, field := range []*string{
		&req.Name,
		&req.Surname,
		&req.Email,
		&req.Phone,
		&req.City,
		&req.PostalCode,
		&req.ProjectStage,
		&req.Sector,
		&req.Description,
		&req.Needs,
	} {
		*field = strings.TrimSpace(*field)
	}
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotID must be positive", ErrInvalidInput)
	}

	required := []struct {
		name  string
		value string
	}{
		{"name", req.Name},
		{"surname", req.Surname},
		{"email", req.Email},
		{"phone", req.Phone},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidInput, f.name)
		}
	}

	if _, err := mail.ParseAddress(req.Email); err != nil {
		return fmt.Errorf("%w: invalid email: %v", ErrInvalidInput, err)
	}

	return nil
}

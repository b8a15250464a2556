package manage_booking

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	req.Token = strings.TrimSpace(req.Token)
	if req.Token == "" {
		return fmt.Errorf("%w: token is required", ErrInvalidInput)
	}

	switch req.Action {
	case ActionCancel, ActionReschedule:
		return nil
	}
	return fmt.Errorf("%w: unknown action %q", ErrInvalidInput, req.Action)
}

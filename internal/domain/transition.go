package domain

import "errors"

// ErrInvalidTransition переход между статусами запрещен
var ErrInvalidTransition = errors.New("domain: invalid booking status transition")

// transitions допустимые переходы; переход в тот же статус не меняет бронирование
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusAccepted, StatusRefused, StatusCancelled},
	StatusAccepted:  {StatusRefused, StatusCancelled},
	StatusRefused:   {},
	StatusCancelled: {},
}

// Transition проверяет переход из from в to
// Возвращает changed=false для повторного перехода в текущий статус
func Transition(from, to BookingStatus) (changed bool, err error) {
	if from == to {
		return false, nil
	}
	for _, next := range transitions[from] {
		if next == to {
			return true, nil
		}
	}
	return false, ErrInvalidTransition
}

// ReleasesSlot true, если переход освобождает слот
func ReleasesSlot(from, to BookingStatus) bool {
	return from.IsActive() && !to.IsActive()
}

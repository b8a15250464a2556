package generate_slots

import "errors"

var (
	// ErrLocationNotFound возвращается, когда площадка не найдена
	ErrLocationNotFound = errors.New("generate_slots: location not found")

	// ErrInvalidTimeRange возвращается, когда конец диапазона не позже начала
	ErrInvalidTimeRange = errors.New("generate_slots: end time must be after start time")

	// ErrOverlappingSlots возвращается, когда новые слоты пересекаются с существующими
	ErrOverlappingSlots = errors.New("generate_slots: slots overlap existing ones")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("generate_slots: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)

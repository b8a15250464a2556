package memory

import (
	"context"
	"sort"

	"github.com/m04kA/incubator-booking/internal/domain"
	bookingRepo "github.com/m04kA/incubator-booking/internal/infra/storage/booking"
)

// BookingRepository бронирования в памяти
type BookingRepository struct {
	store *Store
}

func (r *BookingRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	defer r.store.acquire(ctx)()

	s := r.store
	if _, ok := s.slots[booking.SlotID]; !ok {
		return nil, errForeignKey("time_slots.id", booking.SlotID)
	}
	for _, b := range s.bookings {
		if b.CancelToken == booking.CancelToken {
			return nil, bookingRepo.ErrDuplicateCancelToken
		}
		if booking.IsActive() && b.SlotID == booking.SlotID && b.IsActive() {
			return nil, bookingRepo.ErrSlotAlreadyBooked
		}
	}

	s.seq.booking++
	created := *booking
	created.ID = s.seq.booking
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.bookings[created.ID] = created

	return &created, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	defer r.store.acquire(ctx)()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error) {
	defer r.store.acquire(ctx)()

	b, ok := r.store.findByToken(token)
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	defer r.store.acquire(ctx)()

	s := r.store
	b, ok := s.bookings[id]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if status.IsActive() && !b.IsActive() {
		for _, other := range s.bookings {
			if other.ID != id && other.SlotID == b.SlotID && other.IsActive() {
				return bookingRepo.ErrSlotAlreadyBooked
			}
		}
	}
	b.Status = status
	b.UpdatedAt = s.now()
	s.bookings[id] = b
	return nil
}

func (r *BookingRepository) GetDetailsByCancelToken(ctx context.Context, token string) (*domain.BookingDetails, error) {
	defer r.store.acquire(ctx)()

	b, ok := r.store.findByToken(token)
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.store.details(b), nil
}

func (r *BookingRepository) GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	defer r.store.acquire(ctx)()

	b, ok := r.store.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return r.store.details(b), nil
}

func (r *BookingRepository) ListDetails(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingDetails, error) {
	defer r.store.acquire(ctx)()

	result := make([]*domain.BookingDetails, 0)
	for _, b := range r.store.bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		d := r.store.details(b)
		if filter.LocationID != nil && d.Location.ID != *filter.LocationID {
			continue
		}
		result = append(result, d)
	}

	sort.Slice(result, func(i, j int) bool {
		a, b := result[i].Booking, result[j].Booking
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})
	return result, nil
}

func (r *BookingRepository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	defer r.store.acquire(ctx)()

	counts := make(map[domain.BookingStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}
	for _, b := range r.store.bookings {
		counts[b.Status]++
	}
	return counts, nil
}

func (r *BookingRepository) DeleteBySlot(ctx context.Context, slotID int64) (int64, error) {
	defer r.store.acquire(ctx)()

	var deleted int64
	for id, b := range r.store.bookings {
		if b.SlotID == slotID {
			delete(r.store.bookings, id)
			deleted++
		}
	}
	return deleted, nil
}

func (r *BookingRepository) DeleteByLocation(ctx context.Context, locationID int64) (int64, error) {
	defer r.store.acquire(ctx)()

	var deleted int64
	for id, b := range r.store.bookings {
		if slot, ok := r.store.slots[b.SlotID]; ok && slot.LocationID == locationID {
			delete(r.store.bookings, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *Store) findByToken(token string) (domain.Booking, bool) {
	for _, b := range s.bookings {
		if b.CancelToken == token {
			return b, true
		}
	}
	return domain.Booking{}, false
}

func (s *Store) details(b domain.Booking) *domain.BookingDetails {
	slot := s.slots[b.SlotID]
	return &domain.BookingDetails{
		Booking:  b,
		Slot:     slot,
		Location: s.locations[slot.LocationID],
	}
}

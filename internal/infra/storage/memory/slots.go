package memory

import (
	"context"
	"sort"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
	slotRepo "github.com/m04kA/incubator-booking/internal/infra/storage/slot"
)

// SlotRepository слоты в памяти
type SlotRepository struct {
	store *Store
}

func (r *SlotRepository) CreateBatch(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error) {
	defer r.store.acquire(ctx)()

	s := r.store
	for _, slot := range slots {
		if _, ok := s.locations[slot.LocationID]; !ok {
			return nil, errForeignKey("locations.id", slot.LocationID)
		}
	}

	created := make([]domain.Slot, len(slots))
	for i, slot := range slots {
		s.seq.slot++
		slot.ID = s.seq.slot
		slot.CreatedAt = s.now()
		s.slots[slot.ID] = slot
		created[i] = slot
	}
	return created, nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	defer r.store.acquire(ctx)()

	slot, ok := r.store.slots[id]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return &slot, nil
}

func (r *SlotRepository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	defer r.store.acquire(ctx)()

	slots := make([]*domain.Slot, 0)
	for _, s := range r.store.slots {
		if filter.LocationID != nil && s.LocationID != *filter.LocationID {
			continue
		}
		if filter.From != nil && s.Start.Before(*filter.From) {
			continue
		}
		if filter.OnlyAvailable && s.IsBooked {
			continue
		}
		s := s
		slots = append(slots, &s)
	}

	ascending := filter.From != nil || filter.OnlyAvailable
	sort.Slice(slots, func(i, j int) bool {
		a, b := slots[i], slots[j]
		if !a.Start.Equal(b.Start) {
			return a.Start.Before(b.Start) == ascending
		}
		return (a.ID < b.ID) == ascending
	})
	return slots, nil
}

func (r *SlotRepository) ListAvailable(ctx context.Context, locationID int64, from time.Time) ([]*domain.Slot, error) {
	return r.List(ctx, domain.SlotFilter{
		LocationID:    &locationID,
		From:          &from,
		OnlyAvailable: true,
	})
}

func (r *SlotRepository) CountOverlapping(ctx context.Context, locationID int64, start, end time.Time) (int, error) {
	defer r.store.acquire(ctx)()

	count := 0
	for _, s := range r.store.slots {
		if s.LocationID == locationID && s.Overlaps(start, end) {
			count++
		}
	}
	return count, nil
}

func (r *SlotRepository) MarkBooked(ctx context.Context, id int64) error {
	defer r.store.acquire(ctx)()

	slot, ok := r.store.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	if slot.IsBooked {
		return slotRepo.ErrSlotAlreadyBooked
	}
	slot.IsBooked = true
	r.store.slots[id] = slot
	return nil
}

func (r *SlotRepository) Release(ctx context.Context, id int64) error {
	defer r.store.acquire(ctx)()

	slot, ok := r.store.slots[id]
	if !ok {
		return slotRepo.ErrSlotNotFound
	}
	slot.IsBooked = false
	r.store.slots[id] = slot
	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id int64) error {
	defer r.store.acquire(ctx)()

	if _, ok := r.store.slots[id]; !ok {
		return slotRepo.ErrSlotNotFound
	}
	for _, b := range r.store.bookings {
		if b.SlotID == id {
			return errForeignKey("bookings.slot_id", id)
		}
	}
	delete(r.store.slots, id)
	return nil
}

func (r *SlotRepository) DeleteByLocation(ctx context.Context, locationID int64) (int64, error) {
	defer r.store.acquire(ctx)()

	var deleted int64
	for id, s := range r.store.slots {
		if s.LocationID != locationID {
			continue
		}
		for _, b := range r.store.bookings {
			if b.SlotID == id {
				return 0, errForeignKey("bookings.slot_id", id)
			}
		}
	}
	for id, s := range r.store.slots {
		if s.LocationID == locationID {
			delete(r.store.slots, id)
			deleted++
		}
	}
	return deleted, nil
}

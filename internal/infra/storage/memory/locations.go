package memory

import (
	"context"
	"sort"

	"github.com/m04kA/incubator-booking/internal/domain"
	locationRepo "github.com/m04kA/incubator-booking/internal/infra/storage/location"
)

// LocationRepository площадки в памяти
type LocationRepository struct {
	store *Store
}

func (r *LocationRepository) Create(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	defer r.store.acquire(ctx)()

	s := r.store
	s.seq.location++
	created := *location
	created.ID = s.seq.location
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.locations[created.ID] = created

	return &created, nil
}

func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*domain.Location, error) {
	defer r.store.acquire(ctx)()

	location, ok := r.store.locations[id]
	if !ok {
		return nil, locationRepo.ErrLocationNotFound
	}
	return &location, nil
}

func (r *LocationRepository) List(ctx context.Context) ([]*domain.Location, error) {
	defer r.store.acquire(ctx)()

	locations := make([]*domain.Location, 0, len(r.store.locations))
	for _, l := range r.store.locations {
		l := l
		locations = append(locations, &l)
	}
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].Name != locations[j].Name {
			return locations[i].Name < locations[j].Name
		}
		return locations[i].ID < locations[j].ID
	})
	return locations, nil
}

func (r *LocationRepository) Update(ctx context.Context, location *domain.Location) (*domain.Location, error) {
	defer r.store.acquire(ctx)()

	current, ok := r.store.locations[location.ID]
	if !ok {
		return nil, locationRepo.ErrLocationNotFound
	}
	current.Name = location.Name
	current.City = location.City
	current.Description = location.Description
	current.UpdatedAt = r.store.now()
	r.store.locations[current.ID] = current

	return &current, nil
}

// Delete удаляет площадку; как и внешний ключ в PostgreSQL, не даёт удалить площадку со слотами
func (r *LocationRepository) Delete(ctx context.Context, id int64) error {
	defer r.store.acquire(ctx)()

	if _, ok := r.store.locations[id]; !ok {
		return locationRepo.ErrLocationNotFound
	}
	for _, s := range r.store.slots {
		if s.LocationID == id {
			return errForeignKey("time_slots.location_id", id)
		}
	}
	delete(r.store.locations, id)
	return nil
}

func (r *LocationRepository) Count(ctx context.Context) (int, error) {
	defer r.store.acquire(ctx)()
	return len(r.store.locations), nil
}

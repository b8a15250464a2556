package memory

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// Store хранилище в памяти процесса с теми же гарантиями, что и PostgreSQL:
// транзакции выполняются по одной и откатываются целиком при ошибке
type Store struct {
	mu sync.Mutex

	locations map[int64]domain.Location
	slots     map[int64]domain.Slot
	bookings  map[int64]domain.Booking
	pages     map[int64]domain.Page

	seq sequences
	now func() time.Time
}

type sequences struct {
	location int64
	slot     int64
	booking  int64
	page     int64
}

type lockKey struct{}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		locations: make(map[int64]domain.Location),
		slots:     make(map[int64]domain.Slot),
		bookings:  make(map[int64]domain.Booking),
		pages:     make(map[int64]domain.Page),
		now:       time.Now,
	}
}

// Locations репозиторий площадок
func (s *Store) Locations() *LocationRepository {
	return &LocationRepository{store: s}
}

// Slots репозиторий слотов
func (s *Store) Slots() *SlotRepository {
	return &SlotRepository{store: s}
}

// Bookings репозиторий бронирований
func (s *Store) Bookings() *BookingRepository {
	return &BookingRepository{store: s}
}

// Pages репозиторий страниц
func (s *Store) Pages() *PageRepository {
	return &PageRepository{store: s}
}

// TxManager менеджер транзакций хранилища
func (s *Store) TxManager() *TxManager {
	return &TxManager{store: s}
}

// acquire захватывает хранилище, если вызывающий ещё не внутри транзакции
func (s *Store) acquire(ctx context.Context) func() {
	if s.holds(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) holds(ctx context.Context) bool {
	owner, ok := ctx.Value(lockKey{}).(*Store)
	return ok && owner == s
}

type snapshot struct {
	locations map[int64]domain.Location
	slots     map[int64]domain.Slot
	bookings  map[int64]domain.Booking
	pages     map[int64]domain.Page
	seq       sequences
}

func (s *Store) snapshot() snapshot {
	return snapshot{
		locations: cloneMap(s.locations),
		slots:     cloneMap(s.slots),
		bookings:  cloneMap(s.bookings),
		pages:     cloneMap(s.pages),
		seq:       s.seq,
	}
}

func (s *Store) restore(snap snapshot) {
	s.locations = snap.locations
	s.slots = snap.slots
	s.bookings = snap.bookings
	s.pages = snap.pages
	s.seq = snap.seq
}

func cloneMap[V any](m map[int64]V) map[int64]V {
	out := make(map[int64]V, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

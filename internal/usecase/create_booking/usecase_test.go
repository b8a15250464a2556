package create_booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/internal/infra/storage/memory"
	"github.com/m04kA/incubator-booking/pkg/logger"
)

type notifierMock struct{ mock.Mock }

func (m *notifierMock) Notify(ctx context.Context, details *domain.BookingDetails) error {
	return m.Called(ctx, details).Error(0)
}

type fixedToken string

func (f fixedToken) NewToken() string { return string(f) }

func setup(t *testing.T, n Notifier) (*UseCase, *memory.Store, domain.Slot) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	loc, err := store.Locations().Create(ctx, &domain.Location{Name: "Lyon", City: "Lyon"})
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	slots, err := store.Slots().CreateBatch(ctx, []domain.Slot{{LocationID: loc.ID, Start: start, End: start.Add(time.Hour)}})
	require.NoError(t, err)

	uc := NewUseCase(store.Slots(), store.Locations(), store.Bookings(), n, store.TxManager(), logger.NewNop())
	return uc, store, slots[0]
}

func validRequest(slotID int64) *Request {
	return &Request{
		SlotID:  slotID,
		Name:    " Camille ",
		Surname: "Martin",
		Email:   "camille@example.fr",
		Phone:   "0600000000",
		City:    "Lyon",
	}
}

func TestExecute_Success(t *testing.T) {
	n := &notifierMock{}
	n.On("Notify", mock.Anything, mock.AnythingOfType("*domain.BookingDetails")).Return(nil).Once()
	uc, store, slot := setup(t, n)

	resp, err := uc.Execute(context.Background(), validRequest(slot.ID))
	require.NoError(t, err)

	b := resp.Details.Booking
	assert.Equal(t, domain.StatusPending, b.Status)
	assert.Equal(t, "Camille", b.Name)
	assert.Len(t, b.CancelToken, 32)
	assert.Equal(t, "Lyon", resp.Details.Location.Name)
	assert.True(t, resp.Details.Slot.IsBooked)

	stored, err := store.Slots().GetByID(context.Background(), slot.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsBooked)

	n.AssertExpectations(t)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "blank name", mutate: func(r *Request) { r.Name = "   " }},
		{name: "missing surname", mutate: func(r *Request) { r.Surname = "" }},
		{name: "missing phone", mutate: func(r *Request) { r.Phone = "" }},
		{name: "bad email", mutate: func(r *Request) { r.Email = "not-an-email" }},
		{name: "bad slot id", mutate: func(r *Request) { r.SlotID = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := &notifierMock{}
			uc, store, slot := setup(t, n)

			req := validRequest(slot.ID)
			tt.mutate(req)
			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)

			stored, err := store.Slots().GetByID(context.Background(), slot.ID)
			require.NoError(t, err)
			assert.False(t, stored.IsBooked)
			n.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
		})
	}
}

func TestExecute_SlotNotFound(t *testing.T) {
	uc, _, _ := setup(t, &notifierMock{})

	_, err := uc.Execute(context.Background(), validRequest(999))
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	n := &notifierMock{}
	n.On("Notify", mock.Anything, mock.Anything).Return(nil).Once()
	uc, store, slot := setup(t, n)
	ctx := context.Background()

	_, err := uc.Execute(ctx, validRequest(slot.ID))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validRequest(slot.ID))
	assert.ErrorIs(t, err, ErrSlotNotAvailable)

	bookings, err := store.Bookings().ListDetails(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	n.AssertExpectations(t)
}

func TestExecute_ConcurrentAttemptsSingleWinner(t *testing.T) {
	n := &notifierMock{}
	n.On("Notify", mock.Anything, mock.Anything).Return(nil)
	uc, store, slot := setup(t, n)
	ctx := context.Background()

	const attempts = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		conflicts int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(ctx, validRequest(slot.ID))
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, ErrSlotNotAvailable):
				conflicts++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicts)

	bookings, err := store.Bookings().ListDetails(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, bookings, 1)
	n.AssertNumberOfCalls(t, "Notify", 1)
}

func TestExecute_NotificationFailureKeepsBooking(t *testing.T) {
	n := &notifierMock{}
	n.On("Notify", mock.Anything, mock.Anything).Return(errors.New("smtp: connection refused")).Once()
	uc, store, slot := setup(t, n)
	ctx := context.Background()

	resp, err := uc.Execute(ctx, validRequest(slot.ID))
	require.NoError(t, err)

	got, err := store.Bookings().GetByID(ctx, resp.Details.Booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, got.Status)
	n.AssertExpectations(t)
}

func TestExecute_CancelTokensAreUnique(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	loc, err := store.Locations().Create(ctx, &domain.Location{Name: "Grenoble"})
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	batch := make([]domain.Slot, 0, 10)
	for i := 0; i < 10; i++ {
		s := start.Add(time.Duration(i) * time.Hour)
		batch = append(batch, domain.Slot{LocationID: loc.ID, Start: s, End: s.Add(time.Hour)})
	}
	slots, err := store.Slots().CreateBatch(ctx, batch)
	require.NoError(t, err)

	n := &notifierMock{}
	n.On("Notify", mock.Anything, mock.Anything).Return(nil)
	uc := NewUseCase(store.Slots(), store.Locations(), store.Bookings(), n, store.TxManager(), logger.NewNop())

	tokens := make(map[string]struct{})
	for _, s := range slots {
		resp, err := uc.Execute(ctx, validRequest(s.ID))
		require.NoError(t, err)
		tokens[resp.Details.Booking.CancelToken] = struct{}{}
	}
	assert.Len(t, tokens, len(slots))
}

func TestExecute_TokenCollisionRollsBack(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	loc, err := store.Locations().Create(ctx, &domain.Location{Name: "Lyon"})
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	slots, err := store.Slots().CreateBatch(ctx, []domain.Slot{
		{LocationID: loc.ID, Start: start, End: start.Add(time.Hour)},
		{LocationID: loc.ID, Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
	})
	require.NoError(t, err)

	n := &notifierMock{}
	n.On("Notify", mock.Anything, mock.Anything).Return(nil)
	uc := NewUseCase(store.Slots(), store.Locations(), store.Bookings(), n, store.TxManager(), logger.NewNop()).
		WithTokenGenerator(fixedToken("same"))

	_, err = uc.Execute(ctx, validRequest(slots[0].ID))
	require.NoError(t, err)

	_, err = uc.Execute(ctx, validRequest(slots[1].ID))
	assert.ErrorIs(t, err, ErrInternal)

	second, err := store.Slots().GetByID(ctx, slots[1].ID)
	require.NoError(t, err)
	assert.False(t, second.IsBooked)
}

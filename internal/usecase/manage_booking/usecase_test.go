package manage_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/internal/infra/storage/memory"
	"github.com/m04kA/incubator-booking/pkg/logger"
)

func setup(t *testing.T, status domain.BookingStatus) (*UseCase, *memory.Store, *domain.Booking) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	loc, err := store.Locations().Create(ctx, &domain.Location{Name: "Grenoble", City: "Grenoble"})
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 14, 0, 0, 0, time.UTC)
	slots, err := store.Slots().CreateBatch(ctx, []domain.Slot{{LocationID: loc.ID, Start: start, End: start.Add(time.Hour)}})
	require.NoError(t, err)
	if status.IsActive() {
		require.NoError(t, store.Slots().MarkBooked(ctx, slots[0].ID))
	}

	booking, err := store.Bookings().Create(ctx, &domain.Booking{
		SlotID:      slots[0].ID,
		Name:        "Léa",
		Surname:     "Bernard",
		Status:      status,
		CancelToken: "0123456789abcdef0123456789abcdef",
	})
	require.NoError(t, err)

	return NewUseCase(store.Bookings(), store.Slots(), store.TxManager(), logger.NewNop()), store, booking
}

func getSlot(t *testing.T, store *memory.Store, id int64) *domain.Slot {
	t.Helper()
	slot, err := store.Slots().GetByID(context.Background(), id)
	require.NoError(t, err)
	return slot
}

func TestExecute_CancelFreesSlot(t *testing.T) {
	for _, status := range []domain.BookingStatus{domain.StatusPending, domain.StatusAccepted} {
		t.Run(string(status), func(t *testing.T) {
			uc, store, booking := setup(t, status)

			resp, err := uc.Execute(context.Background(), &Request{Token: booking.CancelToken, Action: ActionCancel})
			require.NoError(t, err)
			assert.True(t, resp.Changed)
			assert.Zero(t, resp.LocationID)
			assert.Equal(t, domain.StatusCancelled, resp.Details.Booking.Status)
			assert.False(t, getSlot(t, store, booking.SlotID).IsBooked)
		})
	}
}

func TestExecute_CancelTwiceIsNoop(t *testing.T) {
	uc, _, booking := setup(t, domain.StatusPending)
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{Token: booking.CancelToken, Action: ActionCancel})
	require.NoError(t, err)

	resp, err := uc.Execute(ctx, &Request{Token: booking.CancelToken, Action: ActionCancel})
	require.NoError(t, err)
	assert.False(t, resp.Changed)
	assert.Equal(t, domain.StatusCancelled, resp.Details.Booking.Status)
}

func TestExecute_CancelRefusedIsConflict(t *testing.T) {
	uc, store, booking := setup(t, domain.StatusRefused)

	_, err := uc.Execute(context.Background(), &Request{Token: booking.CancelToken, Action: ActionCancel})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	got, err := store.Bookings().GetByID(context.Background(), booking.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusRefused, got.Status)
}

func TestExecute_Reschedule(t *testing.T) {
	uc, store, booking := setup(t, domain.StatusPending)
	ctx := context.Background()
	slot := getSlot(t, store, booking.SlotID)

	resp, err := uc.Execute(ctx, &Request{Token: booking.CancelToken, Action: ActionReschedule})
	require.NoError(t, err)
	assert.Equal(t, slot.LocationID, resp.LocationID)
	assert.Equal(t, domain.StatusCancelled, resp.Details.Booking.Status)
	assert.False(t, getSlot(t, store, booking.SlotID).IsBooked)

	_, err = uc.Execute(ctx, &Request{Token: booking.CancelToken, Action: ActionReschedule})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestExecute_Errors(t *testing.T) {
	uc, _, booking := setup(t, domain.StatusPending)
	ctx := context.Background()

	tests := []struct {
		name    string
		req     *Request
		wantErr error
	}{
		{name: "unknown token", req: &Request{Token: "nope", Action: ActionCancel}, wantErr: ErrBookingNotFound},
		{name: "blank token", req: &Request{Token: "  ", Action: ActionCancel}, wantErr: ErrInvalidInput},
		{name: "unknown action", req: &Request{Token: booking.CancelToken, Action: "delete"}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

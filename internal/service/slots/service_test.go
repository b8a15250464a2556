package slots

import (
	"context"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/internal/infra/storage/memory"
	"github.com/m04kA/incubator-booking/internal/service/slots/models"
	"github.com/m04kA/incubator-booking/pkg/logger"
)

func TestService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := NewService(store.Slots(), store.Bookings(), store.TxManager(), time.UTC, logger.NewNop())

	loc, err := store.Locations().Create(ctx, &domain.Location{Name: "Lyon"})
	require.NoError(t, err)
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	created, err := store.Slots().CreateBatch(ctx, []domain.Slot{
		{LocationID: loc.ID, Start: start, End: start.Add(time.Hour)},
		{LocationID: loc.ID, Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
	})
	require.NoError(t, err)

	_, err = store.Bookings().Create(ctx, &domain.Booking{SlotID: created[0].ID, Status: domain.StatusCancelled, CancelToken: "a"})
	require.NoError(t, err)
	_, err = store.Bookings().Create(ctx, &domain.Booking{SlotID: created[0].ID, Status: domain.StatusPending, CancelToken: "b"})
	require.NoError(t, err)
	_, err = store.Bookings().Create(ctx, &domain.Booking{SlotID: created[1].ID, Status: domain.StatusPending, CancelToken: "c"})
	require.NoError(t, err)

	resp, err := svc.Delete(ctx, created[0].ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.DeletedBookings)

	list, err := svc.List(ctx, &models.ListSlotsRequest{LocationID: &loc.ID})
	require.NoError(t, err)
	require.Len(t, list.Slots, 1)
	assert.Equal(t, created[1].ID, list.Slots[0].ID)

	remaining, err := store.Bookings().ListDetails(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	_, err = svc.Delete(ctx, created[0].ID)
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestService_ListInTimezone(t *testing.T) {
	ctx := context.Background()
	paris, err := time.LoadLocation("Europe/Paris")
	require.NoError(t, err)

	store := memory.NewStore()
	svc := NewService(store.Slots(), store.Bookings(), store.TxManager(), paris, logger.NewNop())

	loc, err := store.Locations().Create(ctx, &domain.Location{Name: "Grenoble"})
	require.NoError(t, err)
	start := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	_, err = store.Slots().CreateBatch(ctx, []domain.Slot{{LocationID: loc.ID, Start: start, End: start.Add(time.Hour)}})
	require.NoError(t, err)

	list, err := svc.List(ctx, &models.ListSlotsRequest{})
	require.NoError(t, err)
	require.Len(t, list.Slots, 1)
	assert.Equal(t, "2025-03-01", list.Slots[0].Date)
	assert.Equal(t, "09:00", list.Slots[0].StartTime)
	assert.Equal(t, "10:00", list.Slots[0].EndTime)
}

package locations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/internal/infra/storage/memory"
	"github.com/m04kA/incubator-booking/internal/service/locations/models"
	"github.com/m04kA/incubator-booking/pkg/logger"
	"github.com/m04kA/incubator-booking/pkg/ptr"
)

func newService(store *memory.Store) *Service {
	return NewService(store.Locations(), store.Slots(), store.Bookings(), store.TxManager(), logger.NewNop())
}

func TestService_CreateAndUpdate(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewStore())

	_, err := svc.Create(ctx, &models.CreateLocationRequest{Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := svc.Create(ctx, &models.CreateLocationRequest{Name: " Lyon ", City: "Lyon", Description: "Agence de Lyon"})
	require.NoError(t, err)
	assert.Equal(t, "Lyon", created.Name)

	updated, err := svc.Update(ctx, created.ID, &models.UpdateLocationRequest{Description: ptr.Ptr("Part-Dieu")})
	require.NoError(t, err)
	assert.Equal(t, "Lyon", updated.Name)
	assert.Equal(t, "Part-Dieu", updated.Description)

	_, err = svc.Update(ctx, created.ID, &models.UpdateLocationRequest{Name: ptr.Ptr("")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.Update(ctx, 404, &models.UpdateLocationRequest{City: ptr.Ptr("Nice")})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestService_ListOrderedByName(t *testing.T) {
	ctx := context.Background()
	svc := newService(memory.NewStore())

	for _, name := range []string{"Lyon", "Clermont-Ferrand", "Grenoble"} {
		_, err := svc.Create(ctx, &models.CreateLocationRequest{Name: name})
		require.NoError(t, err)
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list.Locations, 3)
	assert.Equal(t, "Clermont-Ferrand", list.Locations[0].Name)
	assert.Equal(t, "Grenoble", list.Locations[1].Name)
	assert.Equal(t, "Lyon", list.Locations[2].Name)
}

func TestService_DeleteCascades(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	svc := newService(store)

	lyon, err := store.Locations().Create(ctx, &domain.Location{Name: "Lyon"})
	require.NoError(t, err)
	grenoble, err := store.Locations().Create(ctx, &domain.Location{Name: "Grenoble"})
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	slots, err := store.Slots().CreateBatch(ctx, []domain.Slot{
		{LocationID: lyon.ID, Start: start, End: start.Add(time.Hour)},
		{LocationID: lyon.ID, Start: start.Add(time.Hour), End: start.Add(2 * time.Hour)},
		{LocationID: grenoble.ID, Start: start, End: start.Add(time.Hour)},
	})
	require.NoError(t, err)

	for i, s := range slots {
		_, err := store.Bookings().Create(ctx, &domain.Booking{
			SlotID:      s.ID,
			Status:      domain.StatusPending,
			CancelToken: string(rune('a' + i)),
		})
		require.NoError(t, err)
	}

	resp, err := svc.Delete(ctx, lyon.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.DeletedSlots)
	assert.Equal(t, int64(2), resp.DeletedBookings)

	_, err = svc.GetByID(ctx, lyon.ID)
	assert.ErrorIs(t, err, ErrLocationNotFound)

	remaining, err := store.Bookings().ListDetails(ctx, domain.BookingFilter{})
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, grenoble.ID, remaining[0].Location.ID)

	_, err = svc.Delete(ctx, lyon.ID)
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

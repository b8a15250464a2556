package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/incubator-booking/internal/domain"
	bookingRepo "github.com/m04kA/incubator-booking/internal/infra/storage/booking"
	slotRepo "github.com/m04kA/incubator-booking/internal/infra/storage/slot"
)

func seedSlot(t *testing.T, s *Store) (*domain.Location, domain.Slot) {
	t.Helper()
	ctx := context.Background()

	loc, err := s.Locations().Create(ctx, &domain.Location{Name: "Lyon", City: "Lyon"})
	require.NoError(t, err)

	start := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	slots, err := s.Slots().CreateBatch(ctx, []domain.Slot{{LocationID: loc.ID, Start: start, End: start.Add(time.Hour)}})
	require.NoError(t, err)

	return loc, slots[0]
}

func TestTxManager_RollbackOnError(t *testing.T) {
	s := NewStore()
	_, slot := seedSlot(t, s)
	ctx := context.Background()
	errBoom := errors.New("boom")

	err := s.TxManager().Do(ctx, func(txCtx context.Context) error {
		require.NoError(t, s.Slots().MarkBooked(txCtx, slot.ID))
		_, err := s.Bookings().Create(txCtx, &domain.Booking{
			SlotID: slot.ID, Name: "A", Status: domain.StatusPending, CancelToken: "t1",
		})
		require.NoError(t, err)
		return errBoom
	})
	require.ErrorIs(t, err, errBoom)

	got, err := s.Slots().GetByID(ctx, slot.ID)
	require.NoError(t, err)
	assert.False(t, got.IsBooked)

	counts, err := s.Bookings().CountByStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, counts[domain.StatusPending])
}

func TestTxManager_NestedReusesTransaction(t *testing.T) {
	s := NewStore()
	tm := s.TxManager()

	err := tm.Do(context.Background(), func(outer context.Context) error {
		return tm.DoSerializable(outer, func(inner context.Context) error {
			_, err := s.Locations().Count(inner)
			return err
		})
	})
	assert.NoError(t, err)
}

func TestSlotRepository_MarkBooked(t *testing.T) {
	s := NewStore()
	_, slot := seedSlot(t, s)
	ctx := context.Background()

	require.NoError(t, s.Slots().MarkBooked(ctx, slot.ID))
	assert.ErrorIs(t, s.Slots().MarkBooked(ctx, slot.ID), slotRepo.ErrSlotAlreadyBooked)
	assert.ErrorIs(t, s.Slots().MarkBooked(ctx, 999), slotRepo.ErrSlotNotFound)
}

func TestBookingRepository_ActiveSlotUnique(t *testing.T) {
	s := NewStore()
	_, slot := seedSlot(t, s)
	ctx := context.Background()

	first, err := s.Bookings().Create(ctx, &domain.Booking{SlotID: slot.ID, Status: domain.StatusPending, CancelToken: "a"})
	require.NoError(t, err)

	_, err = s.Bookings().Create(ctx, &domain.Booking{SlotID: slot.ID, Status: domain.StatusPending, CancelToken: "b"})
	assert.ErrorIs(t, err, bookingRepo.ErrSlotAlreadyBooked)

	_, err = s.Bookings().Create(ctx, &domain.Booking{SlotID: slot.ID, Status: domain.StatusCancelled, CancelToken: "a"})
	assert.ErrorIs(t, err, bookingRepo.ErrDuplicateCancelToken)

	require.NoError(t, s.Bookings().UpdateStatus(ctx, first.ID, domain.StatusCancelled))
	_, err = s.Bookings().Create(ctx, &domain.Booking{SlotID: slot.ID, Status: domain.StatusPending, CancelToken: "c"})
	assert.NoError(t, err)
}

func TestDelete_ForeignKeys(t *testing.T) {
	s := NewStore()
	loc, slot := seedSlot(t, s)
	ctx := context.Background()

	_, err := s.Bookings().Create(ctx, &domain.Booking{SlotID: slot.ID, Status: domain.StatusPending, CancelToken: "a"})
	require.NoError(t, err)

	assert.ErrorIs(t, s.Slots().Delete(ctx, slot.ID), ErrForeignKeyViolation)
	assert.ErrorIs(t, s.Locations().Delete(ctx, loc.ID), ErrForeignKeyViolation)

	deleted, err := s.Bookings().DeleteByLocation(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = s.Slots().DeleteByLocation(ctx, loc.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	assert.NoError(t, s.Locations().Delete(ctx, loc.ID))
}

func TestSlotRepository_ListAvailableOrder(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	loc, err := s.Locations().Create(ctx, &domain.Location{Name: "Grenoble"})
	require.NoError(t, err)

	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	_, err = s.Slots().CreateBatch(ctx, []domain.Slot{
		{LocationID: loc.ID, Start: base.Add(2 * time.Hour), End: base.Add(3 * time.Hour)},
		{LocationID: loc.ID, Start: base, End: base.Add(time.Hour)},
		{LocationID: loc.ID, Start: base.Add(time.Hour), End: base.Add(2 * time.Hour), IsBooked: true},
	})
	require.NoError(t, err)

	slots, err := s.Slots().ListAvailable(ctx, loc.ID, base)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, base, slots[0].Start)
	assert.Equal(t, base.Add(2*time.Hour), slots[1].Start)
}

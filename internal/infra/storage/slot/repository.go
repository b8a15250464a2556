package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/pkg/dbmetrics"
	"github.com/m04kA/incubator-booking/pkg/psqlbuilder"
)

var columns = []string{"id", "location_id", "start_at", "end_at", "is_booked", "created_at"}

// Repository репозиторий слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория слотов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// CreateBatch создает несколько слотов одним запросом
// Должен вызываться в транзакции, если важно "всё или ничего" вместе с другими изменениями
func (r *Repository) CreateBatch(ctx context.Context, slots []domain.Slot) ([]domain.Slot, error) {
	if len(slots) == 0 {
		return []domain.Slot{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Insert("time_slots").
		Columns("location_id", "start_at", "end_at", "is_booked")
	for _, s := range slots {
		builder = builder.Values(s.LocationID, s.Start, s.End, s.IsBooked)
	}

	query, args, err := builder.Suffix("RETURNING id, created_at").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	// PostgreSQL возвращает строки RETURNING в порядке VALUES
	created := make([]domain.Slot, len(slots))
	copy(created, slots)
	i := 0
	for rows.Next() {
		if i >= len(created) {
			return nil, fmt.Errorf("%w: CreateBatch - unexpected extra row", ErrScanRow)
		}
		if err := rows.Scan(&created[i].ID, &created[i].CreatedAt); err != nil {
			return nil, fmt.Errorf("%w: CreateBatch - scan id: %v", ErrScanRow, err)
		}
		i++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CreateBatch - iterate rows: %v", ErrExecQuery, err)
	}
	if i != len(created) {
		return nil, fmt.Errorf("%w: CreateBatch - expected %d rows, got %d", ErrScanRow, len(created), i)
	}

	return created, nil
}

// GetByID получает слот по ID
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).
		From("time_slots").
		Where(squirrel.Eq{"id": id})
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	slot, err := scanSlot(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan slot: %v", ErrScanRow, err)
	}

	return slot, nil
}

// List возвращает слоты по фильтру
// С From/OnlyAvailable сортировка по возрастанию начала (витрина для посетителя),
// без них - сначала новые (панель сотрудников)
func (r *Repository) List(ctx context.Context, filter domain.SlotFilter) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(columns...).From("time_slots")

	if filter.LocationID != nil {
		builder = builder.Where(squirrel.Eq{"location_id": *filter.LocationID})
	}
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_at": *filter.From})
	}
	if filter.OnlyAvailable {
		builder = builder.Where(squirrel.Eq{"is_booked": false})
	}

	if filter.From != nil || filter.OnlyAvailable {
		builder = builder.OrderBy("start_at ASC", "id ASC")
	} else {
		builder = builder.OrderBy("start_at DESC", "id DESC")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	slots := make([]*domain.Slot, 0)
	for rows.Next() {
		slot, err := scanSlot(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan slot: %v", ErrScanRow, err)
		}
		slots = append(slots, slot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return slots, nil
}

// ListAvailable свободные слоты площадки, начинающиеся не раньше from
func (r *Repository) ListAvailable(ctx context.Context, locationID int64, from time.Time) ([]*domain.Slot, error) {
	return r.List(ctx, domain.SlotFilter{
		LocationID:    &locationID,
		From:          &from,
		OnlyAvailable: true,
	})
}

// CountOverlapping количество слотов площадки, пересекающихся с [start, end)
func (r *Repository) CountOverlapping(ctx context.Context, locationID int64, start, end time.Time) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("time_slots").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.Lt{"start_at": end}).
		Where(squirrel.Gt{"end_at": start}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountOverlapping - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// MarkBooked атомарно помечает свободный слот как занятый
// Условие is_booked = FALSE в UPDATE делает проверку и установку одной операцией:
// конкурентная транзакция дождется фиксации первой и не найдет свободной строки
func (r *Repository) MarkBooked(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("is_booked", true).
		Where(squirrel.Eq{"id": id, "is_booked": false}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: MarkBooked - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 1 {
		return nil
	}

	// Различаем "нет слота" и "слот занят"
	if _, err := r.GetByID(ctx, id); err != nil {
		return err
	}
	return ErrSlotAlreadyBooked
}

// Release освобождает слот
func (r *Repository) Release(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("time_slots").
		Set("is_booked", false).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Release - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Release - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Release - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// Delete удаляет слот; бронирования слота должны быть удалены раньше
func (r *Repository) Delete(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrSlotNotFound
	}

	return nil
}

// DeleteByLocation удаляет все слоты площадки, возвращает количество удаленных
func (r *Repository) DeleteByLocation(ctx context.Context, locationID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("time_slots").
		Where(squirrel.Eq{"location_id": locationID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByLocation - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByLocation - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByLocation - rows affected: %v", ErrExecQuery, err)
	}

	return affected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanSlot(row rowScanner) (*domain.Slot, error) {
	var slot domain.Slot
	err := row.Scan(
		&slot.ID,
		&slot.LocationID,
		&slot.Start,
		&slot.End,
		&slot.IsBooked,
		&slot.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &slot, nil
}

package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/incubator-booking/internal/domain"
	"github.com/m04kA/incubator-booking/pkg/dbmetrics"
	"github.com/m04kA/incubator-booking/pkg/psqlbuilder"
)

const (
	pqUniqueViolation = "23505"

	constraintActiveSlot  = "bookings_active_slot_key"
	constraintCancelToken = "bookings_cancel_token_key"
)

var bookingColumns = []string{
	"b.id",
	"b.slot_id",
	"b.name",
	"b.surname",
	"b.email",
	"b.phone",
	"b.city",
	"b.postal_code",
	"b.project_stage",
	"b.sector",
	"b.description",
	"b.needs",
	"b.status",
	"b.cancel_token",
	"b.created_at",
	"b.updated_at",
}

var detailsColumns = append(append([]string{}, bookingColumns...),
	"s.location_id",
	"s.start_at",
	"s.end_at",
	"s.is_booked",
	"s.created_at",
	"l.name",
	"l.city",
	"l.description",
	"l.created_at",
	"l.updated_at",
)

// Repository репозиторий бронирований
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает бронирование
// Уникальный частичный индекс по slot_id не допускает второго активного бронирования слота
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"slot_id",
			"name",
			"surname",
			"email",
			"phone",
			"city",
			"postal_code",
			"project_stage",
			"sector",
			"description",
			"needs",
			"status",
			"cancel_token",
		).
		Values(
			booking.SlotID,
			booking.Name,
			booking.Surname,
			booking.Email,
			booking.Phone,
			booking.City,
			booking.PostalCode,
			booking.ProjectStage,
			booking.Sector,
			booking.Description,
			booking.Needs,
			booking.Status,
			booking.CancelToken,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *booking
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			switch pqErr.Constraint {
			case constraintActiveSlot:
				return nil, ErrSlotAlreadyBooked
			case constraintCancelToken:
				return nil, ErrDuplicateCancelToken
			}
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetByID получает бронирование по ID
// Внутри транзакции строка блокируется (FOR UPDATE), переходы статуса сериализуются
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByID", squirrel.Eq{"b.id": id})
}

// GetByCancelToken получает бронирование по токену отмены
// Внутри транзакции строка блокируется (FOR UPDATE)
func (r *Repository) GetByCancelToken(ctx context.Context, token string) (*domain.Booking, error) {
	return r.getOne(ctx, "GetByCancelToken", squirrel.Eq{"b.cancel_token": token})
}

func (r *Repository) getOne(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings b").
		Where(where)
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	booking, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return booking, nil
}

// UpdateStatus меняет статус бронирования
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// GetDetailsByCancelToken бронирование со слотом и площадкой по токену отмены
func (r *Repository) GetDetailsByCancelToken(ctx context.Context, token string) (*domain.BookingDetails, error) {
	return r.getDetails(ctx, "GetDetailsByCancelToken", squirrel.Eq{"b.cancel_token": token})
}

// GetDetailsByID бронирование со слотом и площадкой по ID
func (r *Repository) GetDetailsByID(ctx context.Context, id int64) (*domain.BookingDetails, error) {
	return r.getDetails(ctx, "GetDetailsByID", squirrel.Eq{"b.id": id})
}

func (r *Repository) getDetails(ctx context.Context, op string, where squirrel.Sqlizer) (*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := detailsQuery().Where(where).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	details, err := scanDetails(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, op, err)
	}

	return details, nil
}

// ListDetails бронирования со слотами и площадками, сначала новые
func (r *Repository) ListDetails(ctx context.Context, filter domain.BookingFilter) ([]*domain.BookingDetails, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := detailsQuery()
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"b.status": *filter.Status})
	}
	if filter.LocationID != nil {
		builder = builder.Where(squirrel.Eq{"s.location_id": *filter.LocationID})
	}

	query, args, err := builder.OrderBy("b.created_at DESC", "b.id DESC").ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListDetails - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.BookingDetails, 0)
	for rows.Next() {
		details, err := scanDetails(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: ListDetails - scan booking: %v", ErrScanRow, err)
		}
		result = append(result, details)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListDetails - iterate rows: %v", ErrScanRow, err)
	}

	return result, nil
}

// CountByStatus количество бронирований по каждому статусу
func (r *Repository) CountByStatus(ctx context.Context) (map[domain.BookingStatus]int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("status", "COUNT(*)").
		From("bookings").
		GroupBy("status").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[domain.BookingStatus]int, len(domain.AllStatuses))
	for _, status := range domain.AllStatuses {
		counts[status] = 0
	}
	for rows.Next() {
		var (
			status domain.BookingStatus
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("%w: CountByStatus - scan row: %v", ErrScanRow, err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: CountByStatus - iterate rows: %v", ErrScanRow, err)
	}

	return counts, nil
}

// DeleteBySlot удаляет все бронирования слота
func (r *Repository) DeleteBySlot(ctx context.Context, slotID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"slot_id": slotID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteBySlot - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execDelete(ctx, executor, "DeleteBySlot", query, args)
}

// DeleteByLocation удаляет все бронирования слотов площадки
func (r *Repository) DeleteByLocation(ctx context.Context, locationID int64) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Подзапрос строится с "?" - плейсхолдеры перенумерует внешний запрос
	slotIDs := squirrel.Select("id").
		From("time_slots").
		Where(squirrel.Eq{"location_id": locationID})
	sub, subArgs, err := slotIDs.ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByLocation - build subquery: %v", ErrBuildQuery, err)
	}

	query, args, err := psqlbuilder.Delete("bookings").
		Where("slot_id IN ("+sub+")", subArgs...).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteByLocation - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execDelete(ctx, executor, "DeleteByLocation", query, args)
}

func (r *Repository) execDelete(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) (int64, error) {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s - execute delete: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}

	return affected, nil
}

func detailsQuery() squirrel.SelectBuilder {
	return psqlbuilder.Select(detailsColumns...).
		From("bookings b").
		Join("time_slots s ON s.id = b.slot_id").
		Join("locations l ON l.id = s.location_id")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func bookingFields(b *domain.Booking) []interface{} {
	return []interface{}{
		&b.ID,
		&b.SlotID,
		&b.Name,
		&b.Surname,
		&b.Email,
		&b.Phone,
		&b.City,
		&b.PostalCode,
		&b.ProjectStage,
		&b.Sector,
		&b.Description,
		&b.Needs,
		&b.Status,
		&b.CancelToken,
		&b.CreatedAt,
		&b.UpdatedAt,
	}
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	if err := row.Scan(bookingFields(&booking)...); err != nil {
		return nil, err
	}
	return &booking, nil
}

func scanDetails(row rowScanner) (*domain.BookingDetails, error) {
	var d domain.BookingDetails
	dest := append(bookingFields(&d.Booking),
		&d.Slot.LocationID,
		&d.Slot.Start,
		&d.Slot.End,
		&d.Slot.IsBooked,
		&d.Slot.CreatedAt,
		&d.Location.Name,
		&d.Location.City,
		&d.Location.Description,
		&d.Location.CreatedAt,
		&d.Location.UpdatedAt,
	)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	d.Slot.ID = d.Booking.SlotID
	d.Location.ID = d.Slot.LocationID
	return &d, nil
}

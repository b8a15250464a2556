package page

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

const pqUniqueViolation = "23505"

var columns = []string{"id", "slug", "title", "content", "created_at", "updated_at"}

// Repository репозиторий страниц
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория страниц
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает страницу
func (r *Repository) Create(ctx context.Context, page *domain.Page) (*domain.Page, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("pages").
		Columns("slug", "title", "content").
		Values(page.Slug, page.Title, page.Content).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	created := *page
	err = executor.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return &created, nil
}

// GetBySlug получает страницу по slug
func (r *Repository) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("pages").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - build select query: %v", ErrBuildQuery, err)
	}

	page, err := scanPage(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetBySlug - scan page: %v", ErrScanRow, err)
	}

	return page, nil
}

// List все страницы, отсортированные по slug
func (r *Repository) List(ctx context.Context) ([]*domain.Page, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From("pages").
		OrderBy("slug ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	pages := make([]*domain.Page, 0)
	for rows.Next() {
		page, err := scanPage(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan page: %v", ErrScanRow, err)
		}
		pages = append(pages, page)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - iterate rows: %v", ErrScanRow, err)
	}

	return pages, nil
}

// UpdateBySlug обновляет страницу, найденную по slug (slug тоже можно изменить)
func (r *Repository) UpdateBySlug(ctx context.Context, slug string, page *domain.Page) (*domain.Page, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("pages").
		Set("slug", page.Slug).
		Set("title", page.Title).
		Set("content", page.Content).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"slug": slug}).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateBySlug - build update query: %v", ErrBuildQuery, err)
	}

	updated := *page
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updated.ID, &updated.CreatedAt, &updated.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrPageNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: UpdateBySlug - execute update: %v", ErrExecQuery, err)
	}

	return &updated, nil
}

// DeleteBySlug удаляет страницу
func (r *Repository) DeleteBySlug(ctx context.Context, slug string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("pages").
		Where(squirrel.Eq{"slug": slug}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteBySlug - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: DeleteBySlug - execute delete: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: DeleteBySlug - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrPageNotFound
	}

	return nil
}

// Count количество страниц
func (r *Repository) Count(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").From("pages").ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: Count - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: Count - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPage(row rowScanner) (*domain.Page, error) {
	var page domain.Page
	err := row.Scan(
		&page.ID,
		&page.Slug,
		&page.Title,
		&page.Content,
		&page.CreatedAt,
		&page.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

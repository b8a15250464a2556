package bootstrap

import (
	"context"
	"fmt"
)

// UseCase подготовка хранилища: схема и начальные данные
type UseCase struct {
	migrator     Migrator
	locationRepo LocationRepository
	pageRepo     PageRepository
	txManager    TransactionManager
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// migrator может быть nil, если схема не требуется (хранилище в памяти)
func NewUseCase(
	migrator Migrator,
	locationRepo LocationRepository,
	pageRepo PageRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		migrator:     migrator,
		locationRepo: locationRepo,
		pageRepo:     pageRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Execute применяет схему и заполняет пустые таблицы
// Повторный вызов ничего не меняет
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	// 1. Схема
	if uc.migrator != nil {
		if err := uc.migrator.Migrate(ctx); err != nil {
			uc.logger.Error("Bootstrap: failed to migrate: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrMigrate, err)
		}
		uc.logger.Info("Bootstrap: schema is up to date")
	}

	resp := &Response{}

	// 2. Начальные данные
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		locations, err := uc.locationRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to count locations: %v", ErrInternal, err)
		}
		if locations == 0 {
			for _, loc := range sampleLocations() {
				if _, err := uc.locationRepo.Create(txCtx, &loc); err != nil {
					return fmt.Errorf("%w: failed to seed location %q: %v", ErrInternal, loc.Name, err)
				}
				resp.LocationsSeeded++
			}
		}

		pages, err := uc.pageRepo.Count(txCtx)
		if err != nil {
			return fmt.Errorf("%w: failed to count pages: %v", ErrInternal, err)
		}
		if pages == 0 {
			for _, page := range samplePages() {
				if _, err := uc.pageRepo.Create(txCtx, &page); err != nil {
					return fmt.Errorf("%w: failed to seed page %q: %v", ErrInternal, page.Slug, err)
				}
				resp.PagesSeeded++
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("Bootstrap: failed to seed: %v", err)
		return nil, err
	}

	uc.logger.Info("Bootstrap: seeded %d locations, %d pages", resp.LocationsSeeded, resp.PagesSeeded)
	return resp, nil
}

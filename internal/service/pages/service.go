package pages

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/incubator-booking/internal/domain"
	pageRepo "github.com/m04kA/incubator-booking/internal/infra/storage/page"
	"github.com/m04kA/incubator-booking/internal/service/pages/models"
	"github.com/m04kA/incubator-booking/pkg/ptr"
)

// Service сервис для работы со страницами
type Service struct {
	pageRepo  PageRepository
	txManager TransactionManager
	logger    Logger
}

// NewService создает новый экземпляр сервиса страниц
func NewService(pageRepo PageRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		pageRepo:  pageRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// List возвращает все страницы по slug
func (s *Service) List(ctx context.Context) (*models.PageListResponse, error) {
	list, err := s.pageRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	resp := &models.PageListResponse{Pages: make([]models.PageResponse, 0, len(list))}
	for _, p := range list {
		resp.Pages = append(resp.Pages, *models.FromDomainPage(p))
	}
	return resp, nil
}

// GetBySlug получает страницу по slug
func (s *Service) GetBySlug(ctx context.Context, slug string) (*models.PageResponse, error) {
	page, err := s.pageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, s.mapError("GetBySlug", slug, err)
	}
	return models.FromDomainPage(page), nil
}

// Create создает страницу
func (s *Service) Create(ctx context.Context, req *models.CreatePageRequest) (*models.PageResponse, error) {
	page := &domain.Page{
		Slug:    strings.TrimSpace(req.Slug),
		Title:   strings.TrimSpace(req.Title),
		Content: strings.TrimSpace(req.Content),
	}
	if err := validatePage(page.Slug, page.Title, page.Content); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	created, err := s.pageRepo.Create(ctx, page)
	if err != nil {
		return nil, s.mapError("Create", page.Slug, err)
	}

	s.logger.Info("Create: page slug=%s created", created.Slug)
	return models.FromDomainPage(created), nil
}

// Update обновляет переданные поля страницы
func (s *Service) Update(ctx context.Context, slug string, req *models.UpdatePageRequest) (*models.PageResponse, error) {
	var updated *domain.Page

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		page, err := s.pageRepo.GetBySlug(txCtx, slug)
		if err != nil {
			return err
		}

		if req.Slug != nil {
			page.Slug = strings.TrimSpace(ptr.Value(req.Slug))
		}
		if req.Title != nil {
			page.Title = strings.TrimSpace(ptr.Value(req.Title))
		}
		if req.Content != nil {
			page.Content = strings.TrimSpace(ptr.Value(req.Content))
		}
		if err := validatePage(page.Slug, page.Title, page.Content); err != nil {
			return err
		}

		updated, err = s.pageRepo.UpdateBySlug(txCtx, slug, page)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrInvalidInput) {
			s.logger.Warn("Update: validation failed for slug=%s: %v", slug, err)
			return nil, err
		}
		return nil, s.mapError("Update", slug, err)
	}

	s.logger.Info("Update: page slug=%s updated (now %s)", slug, updated.Slug)
	return models.FromDomainPage(updated), nil
}

// Delete удаляет страницу
func (s *Service) Delete(ctx context.Context, slug string) error {
	if err := s.pageRepo.DeleteBySlug(ctx, slug); err != nil {
		return s.mapError("Delete", slug, err)
	}
	s.logger.Info("Delete: page slug=%s deleted", slug)
	return nil
}

func (s *Service) mapError(op, slug string, err error) error {
	switch {
	case errors.Is(err, pageRepo.ErrPageNotFound):
		s.logger.Warn("%s: page slug=%s not found", op, slug)
		return ErrPageNotFound
	case errors.Is(err, pageRepo.ErrSlugTaken):
		s.logger.Warn("%s: slug=%s already taken", op, slug)
		return ErrSlugTaken
	}
	s.logger.Error("%s: repository error for slug=%s: %v", op, slug, err)
	return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
}

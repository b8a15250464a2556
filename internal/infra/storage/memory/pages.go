package memory

import (
	"context"
	"sort"

	"github.com/m04kA/incubator-booking/internal/domain"
	pageRepo "github.com/m04kA/incubator-booking/internal/infra/storage/page"
)

// PageRepository страницы в памяти
type PageRepository struct {
	store *Store
}

func (r *PageRepository) Create(ctx context.Context, page *domain.Page) (*domain.Page, error) {
	defer r.store.acquire(ctx)()

	s := r.store
	if _, ok := s.findPage(page.Slug); ok {
		return nil, pageRepo.ErrSlugTaken
	}

	s.seq.page++
	created := *page
	created.ID = s.seq.page
	created.CreatedAt = s.now()
	created.UpdatedAt = created.CreatedAt
	s.pages[created.ID] = created

	return &created, nil
}

func (r *PageRepository) GetBySlug(ctx context.Context, slug string) (*domain.Page, error) {
	defer r.store.acquire(ctx)()

	p, ok := r.store.findPage(slug)
	if !ok {
		return nil, pageRepo.ErrPageNotFound
	}
	return &p, nil
}

func (r *PageRepository) List(ctx context.Context) ([]*domain.Page, error) {
	defer r.store.acquire(ctx)()

	pages := make([]*domain.Page, 0, len(r.store.pages))
	for _, p := range r.store.pages {
		p := p
		pages = append(pages, &p)
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Slug < pages[j].Slug })
	return pages, nil
}

func (r *PageRepository) UpdateBySlug(ctx context.Context, slug string, page *domain.Page) (*domain.Page, error) {
	defer r.store.acquire(ctx)()

	s := r.store
	current, ok := s.findPage(slug)
	if !ok {
		return nil, pageRepo.ErrPageNotFound
	}
	if page.Slug != slug {
		if _, taken := s.findPage(page.Slug); taken {
			return nil, pageRepo.ErrSlugTaken
		}
	}

	current.Slug = page.Slug
	current.Title = page.Title
	current.Content = page.Content
	current.UpdatedAt = s.now()
	s.pages[current.ID] = current

	return &current, nil
}

func (r *PageRepository) DeleteBySlug(ctx context.Context, slug string) error {
	defer r.store.acquire(ctx)()

	p, ok := r.store.findPage(slug)
	if !ok {
		return pageRepo.ErrPageNotFound
	}
	delete(r.store.pages, p.ID)
	return nil
}

func (r *PageRepository) Count(ctx context.Context) (int, error) {
	defer r.store.acquire(ctx)()
	return len(r.store.pages), nil
}

func (s *Store) findPage(slug string) (domain.Page, bool) {
	for _, p := range s.pages {
		if p.Slug == slug {
			return p, true
		}
	}
	return domain.Page{}, false
}

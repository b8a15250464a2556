package models

import (
	"time"

	"github.com/m04kA/incubator-booking/internal/domain"
)

// CreatePageRequest запрос на создание страницы
type CreatePageRequest struct {
	Slug    string `json:"slug"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// UpdatePageRequest запрос на обновление страницы
// Все поля опциональны - обновляются только переданные значения
type UpdatePageRequest struct {
	Slug    *string `json:"slug,omitempty"`
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// PageResponse ответ с данными страницы
type PageResponse struct {
	Slug      string    `json:"slug"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PageListResponse ответ со списком страниц
type PageListResponse struct {
	Pages []PageResponse `json:"pages"`
}

// FromDomainPage конвертирует domain модель в DTO
func FromDomainPage(p *domain.Page) *PageResponse {
	if p == nil {
		return nil
	}
	return &PageResponse{
		Slug:      p.Slug,
		Title:     p.Title,
		Content:   p.Content,
		UpdatedAt: p.UpdatedAt,
	}
}

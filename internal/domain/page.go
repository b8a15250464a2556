package domain

import "time"

// Page страница с редакционным контентом, адресуется по slug
type Page struct {
	ID        int64
	Slug      string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package usecase

import "mangahub/internal/domain/repository"

const (
	DefaultPageLimit = 10
	MaxPageLimit     = 100
)

// PageQuery is the common page/limit pair of paginated listings.
type PageQuery struct {
	Page  int `validate:"omitempty,min=1"`
	Limit int `validate:"omitempty,min=1,max=100"`
}

// Request applies defaults and returns the repository page request.
func (q PageQuery) Request() repository.PageRequest {
	page, limit := q.Page, q.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}

	return repository.PageRequest{Page: page, Limit: limit}
}

// Paginated is one page of an offset-paginated listing.
type Paginated[T any] struct {
	Items      []T   `json:"items"`
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewPaginated builds a page from repository results; items is never serialized as null.
func NewPaginated[T any](items []T, total int64, req repository.PageRequest) *Paginated[T] {
	if items == nil {
		items = []T{}
	}

	totalPages := 0
	if req.Limit > 0 {
		totalPages = int((total + int64(req.Limit) - 1) / int64(req.Limit))
	}

	return &Paginated[T]{
		Items:      items,
		Total:      total,
		Page:       req.Page,
		Limit:      req.Limit,
		TotalPages: totalPages,
	}
}

// CursorPage is one page of a cursor-paginated listing. NextCursor is nil on the last page.
type CursorPage[T any] struct {
	Items      []T  `json:"items"`
	NextCursor *int `json:"nextCursor"`
}

// FileUpload is an uploaded file already read into memory by the delivery layer.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Data        []byte
}

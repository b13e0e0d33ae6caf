package storage

// Default and maximum page sizes applied by PageRequest.Normalize.
const (
	DefaultPageSize = 20
	MaxPageSize     = 200
)

// PageRequest selects a 1-based page of a listing.
type PageRequest struct {
	Page uint
	Size uint
}

// Normalize applies defaults: page 0 becomes 1, size 0 becomes DefaultPageSize
// and sizes above MaxPageSize are clamped.
func (p PageRequest) Normalize() PageRequest {
	if p.Page == 0 {
		p.Page = 1
	}
	switch {
	case p.Size == 0:
		p.Size = DefaultPageSize
	case p.Size > MaxPageSize:
		p.Size = MaxPageSize
	}

	return p
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() uint {
	p = p.Normalize()

	return (p.Page - 1) * p.Size
}

// Page is one page of a listing together with the total number of matches.
type Page[T any] struct {
	Items []T
	Total int64
}

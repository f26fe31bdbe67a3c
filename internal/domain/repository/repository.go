// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import "errors"

// ErrNotFound is returned by repositories when the requested row does not exist
// or has been soft deleted.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when a write violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

// SortOrder is the direction of a listing.
type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// PageRequest is a 1-based offset page.
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}

	return (p.Page - 1) * p.Limit
}

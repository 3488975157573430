// Package repository defines storage interfaces implemented by concrete backends.
package repository

import "context"

// Store is the storage collaborator consumed by the lifecycle engine.
// Implementations own the audit timestamps: CreatedDate is set on first
// write and ModifiedDate refreshed on every write.
type Store[M any] interface {
	// Save inserts or replaces the record and returns the stored state.
	Save(ctx context.Context, m M) (M, error)
	// FindByID loads a record by id; errs.ErrNotFound when absent.
	FindByID(ctx context.Context, id string) (M, error)
	// FindAll returns every record ordered by id.
	FindAll(ctx context.Context) ([]M, error)
	// FindPage returns one page of records ordered by id.
	FindPage(ctx context.Context, page Page) (PageResult[M], error)
	// DeleteByID removes a record by id.
	DeleteByID(ctx context.Context, id string) error
	// ExistsByID reports whether a record with the id is stored.
	ExistsByID(ctx context.Context, id string) (bool, error)
}

// Page is a zero-based page request.
type Page struct {
	Number int
	Size   int
}

// PageResult is one page of records plus totals.
type PageResult[M any] struct {
	Content       []M
	Number        int
	Size          int
	TotalElements int64
	TotalPages    int
}

package store

import (
	"context"
	"errors"

	"github.com/ArnoutVos/Firedrive/internal/model"
)

var (
	// ErrDocumentNotFound is returned when a document id does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrCategoryNotFound is returned when a category id does not exist.
	ErrCategoryNotFound = errors.New("category not found")
)

type Store interface {
	DocumentStore
	ReservationStore
	CategoryStore
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type DocumentStore interface {
	// CreateDocument inserts a new document and fills in its id.
	CreateDocument(ctx context.Context, doc *model.Document) error
	// GetDocument retrieves a document by id.
	GetDocument(ctx context.Context, id uint) (*model.Document, error)
	// ListDocuments retrieves the documents of a category, ordered by position.
	ListDocuments(ctx context.Context, categoryID uint) ([]*model.Document, error)
	// UpdateDocument saves all fields of an existing document.
	UpdateDocument(ctx context.Context, doc *model.Document) error
	// DeleteDocument removes a document row by id.
	DeleteDocument(ctx context.Context, id uint) error
	// ExistsAlias reports whether a document with the alias exists in the category.
	ExistsAlias(ctx context.Context, categoryID uint, alias string) (bool, error)
	// MaxOrdering returns the highest ordering position, 0 for an empty table.
	MaxOrdering(ctx context.Context) (int, error)
	// ListFileNames returns the owned file paths of all documents.
	ListFileNames(ctx context.Context) ([]string, error)
}

type ReservationStore interface {
	// ListReservedUsers retrieves the users holding a claim on a document.
	ListReservedUsers(ctx context.Context, documentID uint) ([]int64, error)
	// ListReservedGroups retrieves the groups holding a claim on a document.
	ListReservedGroups(ctx context.Context, documentID uint) ([]int64, error)
	// ListTagIDs retrieves the tag ids associated with a document.
	ListTagIDs(ctx context.Context, documentID uint) ([]int64, error)
}

type CategoryStore interface {
	// GetCategory retrieves a category by id.
	GetCategory(ctx context.Context, id uint) (*model.Category, error)
	// CreateCategory inserts a new category and fills in its id.
	CreateCategory(ctx context.Context, category *model.Category) error
}

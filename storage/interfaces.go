package storage

import (
	"context"

	"github.com/varnhold/lexent/core"
)

// DocumentRepository provides operations for managing stored documents.
// Implementations must be thread-safe and support concurrent access.
type DocumentRepository interface {
	// AddDocuments adds one or more documents to storage.
	// Assigns content-based IDs; adding a document whose content is
	// already stored overwrites the existing record and keeps its
	// original collection position.
	// Returns the documents with IDs populated.
	AddDocuments(ctx context.Context, docs ...*core.Document) ([]*core.Document, error)

	// GetDocument retrieves a single document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.Document, error)

	// GetDocuments retrieves multiple documents by their IDs.
	// Returns only the documents that exist (no error for missing documents).
	GetDocuments(ctx context.Context, ids ...core.ID) ([]*core.Document, error)

	// DeleteDocuments removes documents by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any document doesn't exist.
	DeleteDocuments(ctx context.Context, ids ...core.ID) error

	// AllDocuments retrieves every stored document in insertion order.
	AllDocuments(ctx context.Context) ([]*core.Document, error)

	// Count returns the number of stored documents.
	Count(ctx context.Context) (int, error)

	// Close closes the repository and releases resources.
	Close() error
}

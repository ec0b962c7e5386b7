// Package store persists named tree documents.
//
// A [Document] wraps a forest in its interchange form (one
// [treestruct.Dict] per root) together with a generated ID, a
// caller-supplied name, and timestamps. The [Store] interface supports
// several backends:
//   - memory: in-memory storage for development and tests
//   - file: JSON files under a directory, for CLI use
//   - redis: Redis-backed storage with optional TTL
//   - mongo: MongoDB-backed storage for multi-instance deployments
//
// All backends serialize documents as the same JSON/BSON shape, so data can
// be moved between them freely.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/matzehuels/treestruct/pkg/treestruct"
)

// Sentinel errors for store operations.
var (
	// ErrNotFound is returned when a requested document does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidID is returned when a document ID is empty.
	ErrInvalidID = errors.New("document ID must not be empty")
)

// Document is a stored forest with identity and bookkeeping metadata.
type Document struct {
	ID        string                 `json:"id" bson:"_id"`
	Name      string                 `json:"name" bson:"name"`
	Trees     []treestruct.Dict[any] `json:"trees" bson:"trees"`
	CreatedAt time.Time              `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time              `json:"updated_at" bson:"updated_at"`
}

// NewDocument creates a document from the structure containing node, with a
// fresh UUID and creation timestamps. Payloads must be JSON-marshalable.
func NewDocument(name string, node *treestruct.Node[any]) *Document {
	now := time.Now().UTC()
	return &Document{
		ID:        uuid.NewString(),
		Name:      name,
		Trees:     treestruct.ToDict(node, treestruct.Identity[any]),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Roots rebuilds the document's forest, returning one root node per stored
// tree.
func (d *Document) Roots() []*treestruct.Node[any] {
	roots := make([]*treestruct.Node[any], len(d.Trees))
	for i, tree := range d.Trees {
		roots[i] = treestruct.FromDict(tree, treestruct.Identity[any])
	}
	return roots
}

// Store is the interface for document storage backends.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get retrieves a document by ID.
	// Returns ErrNotFound if no document has that ID.
	Get(ctx context.Context, id string) (*Document, error)

	// Put stores a document, overwriting any existing document with the
	// same ID, and refreshes UpdatedAt.
	Put(ctx context.Context, doc *Document) error

	// Delete removes a document. Returns ErrNotFound if absent.
	Delete(ctx context.Context, id string) error

	// List returns all stored documents. The order is unspecified.
	List(ctx context.Context) ([]*Document, error)

	// Close releases backend resources.
	Close() error
}

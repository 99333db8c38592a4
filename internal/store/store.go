package store

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/go-viper/mapstructure/v2"
)

// ErrMalformedDocument marks documents that do not match the expected entity
// shape. Repositories fail loudly on decode instead of propagating partially
// filled structs.
var ErrMalformedDocument = errors.New("malformed document")

// Filter is a single equality/comparison condition on a document field.
type Filter struct {
	Field string
	Op    string // "==", "<", "<=", ">", ">="
	Value any
}

// Query describes a filtered and ordered read. Zero value means list-all.
type Query struct {
	Filters []Filter
	OrderBy string
	Desc    bool
	Limit   int
}

// Document is a raw record as returned by the document store.
type Document struct {
	ID   string
	Data map[string]any
}

// Decode parses the raw data into v using `firestore` field tags.
func (d Document) Decode(v any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  v,
		TagName: "firestore",
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(d.Data); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return nil
}

// DocumentStore is the boundary to the remote document database. Individual
// writes are atomic per document; there is no cross-document transaction
// guarantee. Delete of a nonexistent document is a no-op.
type DocumentStore interface {
	ListAll(ctx context.Context, collection string) ([]Document, error)
	List(ctx context.Context, collection string, q Query) ([]Document, error)
	// Get returns (nil, nil) when the document does not exist.
	Get(ctx context.Context, collection, id string) (*Document, error)
	Create(ctx context.Context, collection, id string, data map[string]any) error
	// Update performs a partial field merge.
	Update(ctx context.Context, collection, id string, data map[string]any) error
	Delete(ctx context.Context, collection, id string) error
}

// ObjectStore is the boundary to the remote blob storage used for images.
type ObjectStore interface {
	// Upload writes the blob and returns a retrievable URL.
	Upload(ctx context.Context, path string, r io.Reader, contentType string) (string, error)
	List(ctx context.Context, prefix string) ([]string, error)
	Delete(ctx context.Context, path string) error
}

// Package store persists named icon documents.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/gielis/iconmaker/internal/document"
)

var ErrNotFound = errors.New("document not found")

// Record is a stored icon document.
type Record struct {
	ID        string             `json:"id"`
	Name      string             `json:"name"`
	Document  *document.Document `json:"document"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}

// Summary describes a record without its shapes.
type Summary struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Shapes    int       `json:"shapes"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Store is implemented by Memory and Postgres. Timestamps are assigned by
// the store; List returns the most recently updated records first.
type Store interface {
	Create(ctx context.Context, id, name string, doc *document.Document) (*Record, error)
	Get(ctx context.Context, id string) (*Record, error)
	List(ctx context.Context) ([]Summary, error)
	Update(ctx context.Context, id, name string, doc *document.Document) (*Record, error)
	Delete(ctx context.Context, id string) error
}

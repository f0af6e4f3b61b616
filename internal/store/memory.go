package store

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/gielis/iconmaker/internal/document"
)

// Memory is a Store kept in process memory. Documents are copied on the
// way in and out.
type Memory struct {
	mu      sync.RWMutex
	records map[string]*Record
	now     func() time.Time
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{records: make(map[string]*Record), now: time.Now}
}

func (m *Memory) Create(_ context.Context, id, name string, doc *document.Document) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; ok {
		return nil, fmt.Errorf("create document: duplicate id %q", id)
	}
	now := m.now().UTC()
	rec := &Record{ID: id, Name: name, Document: doc.Clone(), CreatedAt: now, UpdatedAt: now}
	m.records[id] = rec
	return copyRecord(rec), nil
}

func (m *Memory) Get(_ context.Context, id string) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyRecord(rec), nil
}

func (m *Memory) List(_ context.Context) ([]Summary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Summary, 0, len(m.records))
	for _, rec := range m.records {
		out = append(out, Summary{
			ID:        rec.ID,
			Name:      rec.Name,
			Shapes:    len(rec.Document.Shapes),
			UpdatedAt: rec.UpdatedAt,
		})
	}
	slices.SortFunc(out, func(a, b Summary) int {
		if c := b.UpdatedAt.Compare(a.UpdatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

func (m *Memory) Update(_ context.Context, id, name string, doc *document.Document) (*Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	rec, ok := m.records[id]
	if !ok {
		return nil, ErrNotFound
	}
	rec.Name = name
	rec.Document = doc.Clone()
	rec.UpdatedAt = m.now().UTC()
	return copyRecord(rec), nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.records[id]; !ok {
		return ErrNotFound
	}
	delete(m.records, id)
	return nil
}

func copyRecord(r *Record) *Record {
	c := *r
	c.Document = r.Document.Clone()
	return &c
}

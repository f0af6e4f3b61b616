// Package library is the saved-icon collection: named documents kept in a
// store.Store and served over HTTP.
package library

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/gielis/iconmaker/internal/document"
	"github.com/gielis/iconmaker/internal/store"
	"github.com/gielis/iconmaker/internal/typeid"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrInvalidID   = errors.New("invalid document id")
	ErrInvalidName = errors.New("invalid name")
)

const maxNameLength = 120

type Service struct {
	store store.Store
}

func NewService(s store.Store) *Service {
	return &Service{store: s}
}

// Create validates raw as an interchange document and saves it under a new
// icon id.
func (s *Service) Create(ctx context.Context, name string, raw json.RawMessage) (*store.Record, error) {
	name, doc, err := prepare(name, raw)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.Create(ctx, typeid.NewIconID(), name, doc)
	if err != nil {
		return nil, fmt.Errorf("create document: %w", err)
	}
	return rec, nil
}

func (s *Service) Get(ctx context.Context, id string) (*store.Record, error) {
	if err := typeid.Validate(id, typeid.PrefixIcon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	rec, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return rec, nil
}

func (s *Service) List(ctx context.Context) ([]store.Summary, error) {
	list, err := s.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	return list, nil
}

func (s *Service) Update(ctx context.Context, id, name string, raw json.RawMessage) (*store.Record, error) {
	if err := typeid.Validate(id, typeid.PrefixIcon); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	name, doc, err := prepare(name, raw)
	if err != nil {
		return nil, err
	}
	rec, err := s.store.Update(ctx, id, name, doc)
	if err != nil {
		return nil, mapStoreError(err)
	}
	return rec, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := typeid.Validate(id, typeid.PrefixIcon); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidID, err)
	}
	return mapStoreError(s.store.Delete(ctx, id))
}

func prepare(name string, raw json.RawMessage) (string, *document.Document, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", nil, fmt.Errorf("%w: name is required", ErrInvalidName)
	}
	if len(name) > maxNameLength {
		return "", nil, fmt.Errorf("%w: longer than %d bytes", ErrInvalidName, maxNameLength)
	}
	doc, err := document.Parse(raw)
	if err != nil {
		return "", nil, err
	}
	return name, doc, nil
}

func mapStoreError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	default:
		return err
	}
}

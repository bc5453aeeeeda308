package catalog

import "context"

// NullStore is a no-op catalog that never stores anything.
// Useful for testing or when run recording should be disabled.
type NullStore struct{}

// NewNullStore creates a null catalog.
func NewNullStore() Store {
	return &NullStore{}
}

// Save does nothing.
func (s *NullStore) Save(ctx context.Context, run Run) error { return nil }

// List always returns an empty catalog.
func (s *NullStore) List(ctx context.Context) ([]Run, error) { return nil, nil }

// Close does nothing.
func (s *NullStore) Close(ctx context.Context) error { return nil }

// Ensure NullStore implements Store.
var _ Store = (*NullStore)(nil)

package api

import (
	"context"

	"entitled/fixtures"
	"entitled/models"
)

// EmailSource is the seam at which the fixture-backed facade can be
// swapped for a real backend. Both implementations return records the
// caller owns outright.
type EmailSource interface {
	Emails(ctx context.Context) ([]models.Email, error)
	EmailByID(ctx context.Context, id string) (*models.Email, error)
	Close() error
}

// FixtureSource serves emails from the bundled fixture store
type FixtureSource struct {
	store *fixtures.Store
}

// NewFixtureSource creates a source over the given store
func NewFixtureSource(store *fixtures.Store) *FixtureSource {
	return &FixtureSource{store: store}
}

// Emails returns every fixture email
func (s *FixtureSource) Emails(ctx context.Context) ([]models.Email, error) {
	return s.store.Emails(), nil
}

// EmailByID returns the matching fixture email, or nil when missing
func (s *FixtureSource) EmailByID(ctx context.Context, id string) (*models.Email, error) {
	return s.store.EmailByID(id), nil
}

// Close is a no-op for the fixture source
func (s *FixtureSource) Close() error { return nil }

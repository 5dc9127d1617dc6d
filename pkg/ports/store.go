package ports

import (
	"context"

	"github.com/aretw0/turing/pkg/domain"
)

// ResultStore defines the interface for persisting simulation outcomes.
type ResultStore interface {
	// Save persists the record under record.ID, replacing any previous value.
	Save(ctx context.Context, record *domain.RunRecord) error

	// Load retrieves the record for a given run ID.
	// Returns domain.ErrRunNotFound if the run does not exist.
	Load(ctx context.Context, id string) (*domain.RunRecord, error)

	// Delete removes the record for a given run ID.
	Delete(ctx context.Context, id string) error

	// List returns the IDs of every stored run.
	List(ctx context.Context) ([]string, error)
}

// Package personnel stores generated campaign personnel.
package personnel

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks -source=interface.go

import (
	"context"

	"github.com/dither001/mekhq/internal/domain/personnel"
)

// Repository defines the interface for personnel persistence
type Repository interface {
	// Create stores a new person and stamps its timestamps
	Create(ctx context.Context, person *personnel.Person) error

	// CreateBatch stores every person or none of them
	CreateBatch(ctx context.Context, people []*personnel.Person) error

	// Get retrieves a person by ID
	Get(ctx context.Context, id string) (*personnel.Person, error)

	// ListByCampaign retrieves every person in a campaign, oldest first
	ListByCampaign(ctx context.Context, campaignID string) ([]*personnel.Person, error)

	// Update replaces an existing person
	Update(ctx context.Context, person *personnel.Person) error

	// Delete removes a person
	Delete(ctx context.Context, id string) error
}

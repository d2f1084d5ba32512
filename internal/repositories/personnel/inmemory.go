package personnel

import (
	"context"
	"sync"

	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
)

// InMemoryRepository is an in-memory implementation of the personnel repository.
// Useful for testing and for runs without Redis.
type InMemoryRepository struct {
	mu           sync.RWMutex
	people       map[string]*personnel.Person
	timeProvider TimeProvider
}

// NewInMemoryRepository creates a new in-memory repository
func NewInMemoryRepository() *InMemoryRepository {
	return NewInMemoryRepositoryWithClock(&RealTimeProvider{})
}

// NewInMemoryRepositoryWithClock creates an in-memory repository stamping
// records with the given clock
func NewInMemoryRepositoryWithClock(tp TimeProvider) *InMemoryRepository {
	if tp == nil {
		panic("time provider cannot be nil")
	}
	return &InMemoryRepository{
		people:       make(map[string]*personnel.Person),
		timeProvider: tp,
	}
}

// Create stores a new person
func (r *InMemoryRepository) Create(ctx context.Context, p *personnel.Person) error {
	return r.CreateBatch(ctx, []*personnel.Person{p})
}

// CreateBatch stores every person or, if any is invalid or already stored, none
func (r *InMemoryRepository) CreateBatch(ctx context.Context, people []*personnel.Person) error {
	if err := validateBatch(people); err != nil {
		return err
	}
	if len(people) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range people {
		if _, exists := r.people[p.ID]; exists {
			return hqerr.AlreadyExistsf("person with ID '%s' already exists", p.ID).
				WithMeta("person_id", p.ID)
		}
	}

	now := r.timeProvider.Now()
	for _, p := range people {
		p.CreatedAt = now
		p.UpdatedAt = now

		// Store a copy to avoid external modifications
		stored := *p
		r.people[p.ID] = &stored
	}

	return nil
}

// Get retrieves a person by ID
func (r *InMemoryRepository) Get(ctx context.Context, id string) (*personnel.Person, error) {
	if id == "" {
		return nil, hqerr.InvalidArgument("person ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.people[id]
	if !exists {
		return nil, hqerr.NotFoundf("person with ID '%s' not found", id).
			WithMeta("person_id", id)
	}

	out := *p
	return &out, nil
}

// ListByCampaign retrieves every person in a campaign
func (r *InMemoryRepository) ListByCampaign(ctx context.Context, campaignID string) ([]*personnel.Person, error) {
	if campaignID == "" {
		return nil, hqerr.InvalidArgument("campaign ID is required")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	people := []*personnel.Person{}
	for _, p := range r.people {
		if p.CampaignID == campaignID {
			out := *p
			people = append(people, &out)
		}
	}
	sortRoster(people)

	return people, nil
}

// Update replaces an existing person
func (r *InMemoryRepository) Update(ctx context.Context, p *personnel.Person) error {
	if err := validatePerson(p); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.people[p.ID]; !exists {
		return hqerr.NotFoundf("person with ID '%s' not found", p.ID).
			WithMeta("person_id", p.ID)
	}

	p.UpdatedAt = r.timeProvider.Now()
	stored := *p
	r.people[p.ID] = &stored

	return nil
}

// Delete removes a person
func (r *InMemoryRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return hqerr.InvalidArgument("person ID is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.people[id]; !exists {
		return hqerr.NotFoundf("person with ID '%s' not found", id).
			WithMeta("person_id", id)
	}
	delete(r.people, id)

	return nil
}

var _ Repository = (*InMemoryRepository)(nil)

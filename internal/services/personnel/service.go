// Package personnel recruits generated personnel into campaigns and stores them.
package personnel

import (
	"context"
	"log"

	"golang.org/x/sync/errgroup"

	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
	"github.com/dither001/mekhq/internal/generator"
	repo "github.com/dither001/mekhq/internal/repositories/personnel"
)

// DefaultBatchConcurrency is how many recruits a batch generates at once
const DefaultBatchConcurrency = 4

// Repository is an alias for the personnel repository interface
type Repository = repo.Repository

// Service defines the recruitment service interface
type Service interface {
	// Recruit generates one person and stores it
	Recruit(ctx context.Context, input *RecruitInput) (*personnel.Person, error)

	// RecruitBatch generates several people concurrently and stores them in input order
	RecruitBatch(ctx context.Context, input *RecruitBatchInput) ([]*personnel.Person, error)

	// GetPerson retrieves a stored person
	GetPerson(ctx context.Context, id string) (*personnel.Person, error)

	// ListPersonnel lists every stored person in a campaign
	ListPersonnel(ctx context.Context, campaignID string) ([]*personnel.Person, error)
}

// RoleAssignment is the pair of roles a recruit is generated for
type RoleAssignment struct {
	Primary   personnel.Role
	Secondary personnel.Role // Optional, RoleNone when empty
}

// RecruitInput contains data for recruiting one person
type RecruitInput struct {
	Campaign      generator.Context
	PrimaryRole   personnel.Role
	SecondaryRole personnel.Role // Optional
	DryRun        bool           // Generate without storing
}

// RecruitBatchInput contains data for recruiting several people
type RecruitBatchInput struct {
	Campaign generator.Context
	Roles    []RoleAssignment
	DryRun   bool
}

// service implements the Service interface
type service struct {
	repository       Repository
	generator        generator.Generator
	batchConcurrency int
}

// ServiceConfig holds configuration for the service
type ServiceConfig struct {
	Repository       Repository          // Required
	Generator        generator.Generator // Optional, DefaultGenerator when nil
	BatchConcurrency int                 // Optional, DefaultBatchConcurrency when zero
}

// NewService creates a new recruitment service
func NewService(cfg *ServiceConfig) Service {
	if cfg == nil {
		panic("ServiceConfig cannot be nil")
	}
	if cfg.Repository == nil {
		panic("repository is required")
	}

	svc := &service{
		repository:       cfg.Repository,
		generator:        cfg.Generator,
		batchConcurrency: cfg.BatchConcurrency,
	}
	if svc.generator == nil {
		svc.generator = generator.NewDefaultGenerator(nil)
	}
	if svc.batchConcurrency <= 0 {
		svc.batchConcurrency = DefaultBatchConcurrency
	}
	return svc
}

func (s *service) generate(c generator.Context, primary, secondary personnel.Role) (*personnel.Person, error) {
	if secondary == "" || secondary == personnel.RoleNone {
		return s.generator.Generate(c, primary)
	}
	return s.generator.GenerateWithSecondary(c, primary, secondary)
}

// Recruit generates one person and stores it
func (s *service) Recruit(ctx context.Context, input *RecruitInput) (*personnel.Person, error) {
	if input == nil {
		return nil, hqerr.InvalidArgument("input cannot be nil")
	}
	if input.Campaign == nil {
		return nil, hqerr.InvalidArgument("campaign is required")
	}

	p, err := s.generate(input.Campaign, input.PrimaryRole, input.SecondaryRole)
	if err != nil {
		return nil, hqerr.Wrapf(err, "failed to generate %s", input.PrimaryRole)
	}

	if input.DryRun {
		return p, nil
	}

	if err := s.repository.Create(ctx, p); err != nil {
		return nil, hqerr.Wrapf(err, "failed to save recruit %s", p.ID)
	}

	log.Printf("Recruited %s (%s, %s) into campaign %s", p.Name, p.PrimaryRole.Name(), p.ExperienceLevel, p.CampaignID)
	return p, nil
}

// RecruitBatch generates every requested recruit concurrently, then stores
// them in one repository batch. Any failure leaves nothing stored.
func (s *service) RecruitBatch(ctx context.Context, input *RecruitBatchInput) ([]*personnel.Person, error) {
	if input == nil {
		return nil, hqerr.InvalidArgument("input cannot be nil")
	}
	if input.Campaign == nil {
		return nil, hqerr.InvalidArgument("campaign is required")
	}
	if len(input.Roles) == 0 {
		return []*personnel.Person{}, nil
	}

	people := make([]*personnel.Person, len(input.Roles))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.batchConcurrency)
	for i, roles := range input.Roles {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p, err := s.generate(input.Campaign, roles.Primary, roles.Secondary)
			if err != nil {
				return hqerr.Wrapf(err, "failed to generate recruit %d (%s)", i+1, roles.Primary)
			}
			people[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if input.DryRun {
		return people, nil
	}

	if err := s.repository.CreateBatch(ctx, people); err != nil {
		return nil, hqerr.Wrapf(err, "failed to save %d recruits", len(people))
	}

	log.Printf("Recruited %d personnel into campaign %s", len(people), input.Campaign.ID())
	return people, nil
}

// GetPerson retrieves a stored person
func (s *service) GetPerson(ctx context.Context, id string) (*personnel.Person, error) {
	if id == "" {
		return nil, hqerr.InvalidArgument("person ID is required")
	}

	p, err := s.repository.Get(ctx, id)
	if err != nil {
		return nil, hqerr.Wrapf(err, "failed to get person '%s'", id)
	}
	return p, nil
}

// ListPersonnel lists every stored person in a campaign
func (s *service) ListPersonnel(ctx context.Context, campaignID string) ([]*personnel.Person, error) {
	if campaignID == "" {
		return nil, hqerr.InvalidArgument("campaign ID is required")
	}

	people, err := s.repository.ListByCampaign(ctx, campaignID)
	if err != nil {
		return nil, hqerr.Wrapf(err, "failed to list personnel for campaign '%s'", campaignID)
	}
	return people, nil
}

package personnel

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/dither001/mekhq/internal/domain/personnel"
	hqerr "github.com/dither001/mekhq/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// listConcurrency caps the concurrent record reads of ListByCampaign
const listConcurrency = 8

// redisRepo implements the Repository interface using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// RedisConfig holds configuration for the Redis repository
type RedisConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed personnel repository
func NewRedisRepository(cfg *RedisConfig) Repository {
	if cfg == nil {
		panic("RedisConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

// NewRedis creates a Redis repository with the real clock
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisConfig{Client: client})
}

// key generates the Redis key for a person
func (r *redisRepo) key(id string) string {
	return fmt.Sprintf("person:%s", id)
}

// campaignKey generates the Redis key for a campaign's personnel index
func (r *redisRepo) campaignKey(campaignID string) string {
	return fmt.Sprintf("campaign:%s:personnel", campaignID)
}

func validatePerson(p *personnel.Person) error {
	if p == nil {
		return hqerr.InvalidArgument("person cannot be nil")
	}
	if p.ID == "" {
		return hqerr.InvalidArgument("person ID is required")
	}
	if p.CampaignID == "" {
		return hqerr.InvalidArgument("person campaign ID is required")
	}
	return nil
}

// validateBatch checks every person and rejects IDs repeated within the batch
func validateBatch(people []*personnel.Person) error {
	seen := make(map[string]struct{}, len(people))
	for _, p := range people {
		if err := validatePerson(p); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return hqerr.AlreadyExistsf("person with ID '%s' appears twice in batch", p.ID).
				WithMeta("person_id", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

func (r *redisRepo) encode(p *personnel.Person) (string, error) {
	jsonData, err := json.Marshal(toPersonData(p))
	if err != nil {
		return "", fmt.Errorf("failed to marshal person: %w", err)
	}
	return string(jsonData), nil
}

func (r *redisRepo) set(ctx context.Context, p *personnel.Person) error {
	jsonData, err := r.encode(p)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(p.ID), jsonData, 0)
	pipe.SAdd(ctx, r.campaignKey(p.CampaignID), p.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return hqerr.WrapWithCode(err, hqerr.CodeUnavailable, "failed to store person in Redis")
	}
	return nil
}

func (r *redisRepo) exists(ctx context.Context, id string) (bool, error) {
	n, err := r.client.Exists(ctx, r.key(id)).Result()
	if err != nil {
		return false, hqerr.WrapWithCode(err, hqerr.CodeUnavailable, "failed to check person existence")
	}
	return n > 0, nil
}

// Create stores a new person
func (r *redisRepo) Create(ctx context.Context, p *personnel.Person) error {
	return r.CreateBatch(ctx, []*personnel.Person{p})
}

// CreateBatch writes every record with one MSETNX, so either all keys are
// set or, when any already exists, none are. Index entries follow in a
// pipeline; if that fails the records are removed again.
func (r *redisRepo) CreateBatch(ctx context.Context, people []*personnel.Person) error {
	if err := validateBatch(people); err != nil {
		return err
	}
	if len(people) == 0 {
		return nil
	}

	now := r.timeProvider.Now()

	keys := make([]string, 0, len(people))
	pairs := make([]interface{}, 0, 2*len(people))
	var campaigns []string
	members := make(map[string][]interface{})
	for _, p := range people {
		stamped := *p
		stamped.CreatedAt = now
		stamped.UpdatedAt = now

		jsonData, err := r.encode(&stamped)
		if err != nil {
			return err
		}
		keys = append(keys, r.key(p.ID))
		pairs = append(pairs, r.key(p.ID), jsonData)

		if _, ok := members[p.CampaignID]; !ok {
			campaigns = append(campaigns, p.CampaignID)
		}
		members[p.CampaignID] = append(members[p.CampaignID], p.ID)
	}

	created, err := r.client.MSetNX(ctx, pairs...).Result()
	if err != nil {
		return hqerr.WrapWithCode(err, hqerr.CodeUnavailable, "failed to store personnel in Redis")
	}
	if !created {
		if len(people) == 1 {
			return hqerr.AlreadyExistsf("person with ID '%s' already exists", people[0].ID).
				WithMeta("person_id", people[0].ID)
		}
		return hqerr.AlreadyExistsf("one of %d personnel already exists", len(people))
	}

	pipe := r.client.Pipeline()
	for _, campaignID := range campaigns {
		pipe.SAdd(ctx, r.campaignKey(campaignID), members[campaignID]...)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		if delErr := r.client.Del(ctx, keys...).Err(); delErr != nil {
			log.Printf("Failed to remove unindexed personnel %v: %v", keys, delErr)
		}
		return hqerr.WrapWithCode(err, hqerr.CodeUnavailable, "failed to index personnel in Redis")
	}

	for _, p := range people {
		p.CreatedAt = now
		p.UpdatedAt = now
	}
	return nil
}

// Get retrieves a person by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*personnel.Person, error) {
	if id == "" {
		return nil, hqerr.InvalidArgument("person ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if err == redis.Nil {
		return nil, hqerr.NotFoundf("person with ID '%s' not found", id).
			WithMeta("person_id", id)
	}
	if err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeUnavailable, "failed to get person from Redis")
	}

	var data PersonData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, fmt.Errorf("failed to unmarshal person: %w", err)
	}

	return fromPersonData(&data), nil
}

// ListByCampaign retrieves every person indexed under the campaign.
// Index entries whose record has gone are skipped.
func (r *redisRepo) ListByCampaign(ctx context.Context, campaignID string) ([]*personnel.Person, error) {
	if campaignID == "" {
		return nil, hqerr.InvalidArgument("campaign ID is required")
	}

	ids, err := r.client.SMembers(ctx, r.campaignKey(campaignID)).Result()
	if err != nil {
		return nil, hqerr.WrapWithCode(err, hqerr.CodeUnavailable, "failed to list personnel IDs")
	}

	found := make([]*personnel.Person, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			p, err := r.Get(gctx, id)
			if hqerr.IsNotFound(err) {
				log.Printf("Skipping stale personnel index entry %s in campaign %s", id, campaignID)
				return nil
			}
			if err != nil {
				return hqerr.Wrapf(err, "failed to get person %s", id)
			}
			found[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	people := make([]*personnel.Person, 0, len(found))
	for _, p := range found {
		if p != nil {
			people = append(people, p)
		}
	}
	sortRoster(people)

	return people, nil
}

// Update replaces an existing person
func (r *redisRepo) Update(ctx context.Context, p *personnel.Person) error {
	if err := validatePerson(p); err != nil {
		return err
	}

	exists, err := r.exists(ctx, p.ID)
	if err != nil {
		return err
	}
	if !exists {
		return hqerr.NotFoundf("person with ID '%s' not found", p.ID).
			WithMeta("person_id", p.ID)
	}

	p.UpdatedAt = r.timeProvider.Now()

	return r.set(ctx, p)
}

// Delete removes a person and its index entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, r.campaignKey(p.CampaignID), id)
	if _, err := pipe.Exec(ctx); err != nil {
		return hqerr.WrapWithCode(err, hqerr.CodeUnavailable, "failed to delete person from Redis")
	}

	return nil
}

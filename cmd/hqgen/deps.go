package main

import (
	"context"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/dither001/mekhq/internal/config"
	"github.com/dither001/mekhq/internal/dice"
	"github.com/dither001/mekhq/internal/generator"
	"github.com/dither001/mekhq/internal/names"
	personnelRepo "github.com/dither001/mekhq/internal/repositories/personnel"
	"github.com/dither001/mekhq/internal/services"
)

// deps holds everything a command needs
type deps struct {
	Config     *config.Config
	Roller     dice.Roller
	Names      *names.RandomGenerator
	Repository personnelRepo.Repository
	Persistent bool
}

// depsOptions are per-command overrides of the environment
type depsOptions struct {
	Seed         int64
	RequireRedis bool
}

// withDeps loads config and builds dependencies, then calls fn.
// The Redis client, if any, is closed afterwards.
func withDeps(ctx context.Context, opts depsOptions, fn func(*deps) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	seed := cfg.Seed
	if opts.Seed != 0 {
		seed = opts.Seed
	}

	d := &deps{Config: cfg}
	nameRoller := dice.NewRandomRoller()
	if seed != 0 {
		d.Roller = dice.NewSeededRoller(seed)
		nameRoller = dice.NewSeededRoller(seed + 1)
		// Concurrent draws from one seeded source interleave unpredictably
		cfg.BatchConcurrency = 1
	} else {
		d.Roller = dice.NewRandomRoller()
	}

	corpus := names.DefaultCorpus()
	if cfg.NamesFile != "" {
		corpus, err = names.LoadCorpus(cfg.NamesFile)
		if err != nil {
			return fmt.Errorf("loading names: %w", err)
		}
	}
	percentFemale := cfg.PercentFemale
	d.Names = names.NewRandomGenerator(&names.Config{
		Roller:        nameRoller,
		Corpus:        corpus,
		PercentFemale: &percentFemale,
	})

	switch {
	case cfg.UseRedis():
		redisOpts, err := cfg.RedisOptions()
		if err != nil {
			return err
		}
		client := redis.NewClient(redisOpts)
		defer client.Close()

		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("connecting to redis at %s: %w", redisOpts.Addr, err)
		}
		log.Printf("Using Redis personnel store at %s", redisOpts.Addr)

		d.Repository = personnelRepo.NewRedis(client)
		d.Persistent = true
	case opts.RequireRedis:
		return fmt.Errorf("HQ_REDIS_URL must be set for this command")
	default:
		d.Repository = personnelRepo.NewInMemoryRepository()
	}

	return fn(d)
}

// provider builds the service provider around a generator
func (d *deps) provider(gen generator.Generator) *services.Provider {
	return services.NewProvider(&services.ProviderConfig{
		PersonnelRepository: d.Repository,
		Generator:           gen,
		BatchConcurrency:    d.Config.BatchConcurrency,
	})
}

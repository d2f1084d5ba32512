package dice

import (
	"math/rand"
	"sync"
	"time"
)

// randomRoller implements Roller over a seeded source guarded by a mutex
type randomRoller struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomRoller creates a roller seeded from crypto/rand,
// falling back to the clock if the system source is unreadable
func NewRandomRoller() Roller {
	seed, err := NewSeed()
	if err != nil {
		seed = time.Now().UnixNano()
	}
	return NewSeededRoller(seed)
}

// NewSeededRoller creates a roller whose sequence is fixed by seed
func NewSeededRoller(seed int64) Roller {
	return &randomRoller{
		rng: rand.New(rand.NewSource(seed)),
	}
}

// Roll implements Roller.Roll
func (r *randomRoller) Roll(count, sides, bonus int) (*RollResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return roll(r.rng, count, sides, bonus)
}

// RandomInt implements Roller.RandomInt
func (r *randomRoller) RandomInt(n int) (int, error) {
	if n <= 0 {
		return 0, ErrInvalidBound
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Intn(n), nil
}

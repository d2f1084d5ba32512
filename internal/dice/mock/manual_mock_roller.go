package mockdice

import (
	"fmt"
	"sync"

	"github.com/dither001/mekhq/internal/dice"
)

// ManualMockRoller implements dice.Roller with predetermined results.
// Roll consumes one scripted value per die; RandomInt consumes one value in [0, n).
type ManualMockRoller struct {
	mu        sync.Mutex
	rolls     []int
	rollIndex int
}

// NewManualMockRoller creates a new scripted roller
func NewManualMockRoller() *ManualMockRoller {
	return &ManualMockRoller{
		rolls: []int{},
	}
}

// SetNextRoll appends a scripted value
func (m *ManualMockRoller) SetNextRoll(roll int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = append(m.rolls, roll)
}

// SetRolls replaces the script and rewinds it
func (m *ManualMockRoller) SetRolls(rolls []int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = rolls
	m.rollIndex = 0
}

// Reset clears the script
func (m *ManualMockRoller) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rolls = []int{}
	m.rollIndex = 0
}

// Remaining reports how many scripted values have not been consumed
func (m *ManualMockRoller) Remaining() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.rolls) - m.rollIndex
}

func (m *ManualMockRoller) getNextRoll() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.rollIndex >= len(m.rolls) {
		return 0, fmt.Errorf("no more predetermined rolls available (used %d of %d)", m.rollIndex, len(m.rolls))
	}

	roll := m.rolls[m.rollIndex]
	m.rollIndex++
	return roll, nil
}

// Roll implements dice.Roller.Roll
func (m *ManualMockRoller) Roll(count, sides, bonus int) (*dice.RollResult, error) {
	rolls := make([]int, count)
	rawTotal := 0

	for i := 0; i < count; i++ {
		roll, err := m.getNextRoll()
		if err != nil {
			return nil, err
		}
		if roll < 1 || roll > sides {
			return nil, fmt.Errorf("invalid roll %d for d%d", roll, sides)
		}
		rolls[i] = roll
		rawTotal += roll
	}

	return &dice.RollResult{
		Total:    rawTotal + bonus,
		RawTotal: rawTotal,
		Rolls:    rolls,
		Bonus:    bonus,
		Count:    count,
		Sides:    sides,
	}, nil
}

// RandomInt implements dice.Roller.RandomInt
func (m *ManualMockRoller) RandomInt(n int) (int, error) {
	roll, err := m.getNextRoll()
	if err != nil {
		return 0, err
	}
	if roll < 0 || roll >= n {
		return 0, fmt.Errorf("invalid random value %d for bound %d", roll, n)
	}
	return roll, nil
}

package dice

//go:generate mockgen -destination=mock/mock_roller.go -package=mockdice -source=roller.go

// Roller is the randomness provider for personnel generation.
// Implementations must be safe for concurrent draws.
type Roller interface {
	// Roll rolls count dice with the given sides and adds a bonus
	Roll(count, sides, bonus int) (*RollResult, error)

	// RandomInt returns a uniform value in [0, n)
	RandomInt(n int) (int, error)
}

// Package uuid wraps google/uuid behind an interface so person IDs can be fixed in tests.
package uuid

//go:generate mockgen -destination=mocks/mock_generator.go -package=mocks -source=uuid.go

import (
	"github.com/google/uuid"
)

// Generator produces unique identifiers
type Generator interface {
	New() string
}

// GoogleUUIDGenerator implements Generator with random (v4) UUIDs
type GoogleUUIDGenerator struct{}

// New generates a new UUID string
func (g *GoogleUUIDGenerator) New() string {
	return uuid.New().String()
}

// NewGoogleUUIDGenerator creates a new GoogleUUIDGenerator
func NewGoogleUUIDGenerator() *GoogleUUIDGenerator {
	return &GoogleUUIDGenerator{}
}

package personnel

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/dither001/mekhq/internal/repositories/personnel TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type RealTimeProvider struct{}

func (r *RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

package combatants

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks -source=time_provider.go

// TimeProvider stamps stored snapshots
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider uses the wall clock
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

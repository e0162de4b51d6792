package fuzzer

import "time"

// Stats is a read-only snapshot of the session counters.
type Stats struct {
	TotalCases    uint64
	Crashes       uint64
	UniqueCrashes uint64
	Timeouts      uint64
	CoverageBits  uint64
	ExecPerSec    float64
	StartTime     time.Time
	LastCrashTime time.Time
}

// Runtime returns how long the session has been running. Derived, never
// stored.
func (s Stats) Runtime() time.Duration {
	return time.Since(s.StartTime)
}

package reminder

import "time"

// Clock abstracts time so phases can be driven by simulated time in tests.
type Clock interface {
	Now() time.Time
}

// RealClock uses actual system time.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now() }

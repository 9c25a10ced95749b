// Package clock provides the time sources injected into the ledger service.
package clock

import (
	"sync"
	"time"
)

// System reads the wall clock in UTC.
type System struct{}

// Now returns the current UTC time.
func (System) Now() time.Time {
	return time.Now().UTC()
}

// Fake is a manually advanced clock for tests.
type Fake struct {
	mutex sync.Mutex
	now   time.Time
}

// NewFake returns a Fake frozen at start.
func NewFake(start time.Time) *Fake {
	return &Fake{now: start.UTC()}
}

// Now returns the frozen time.
func (fake *Fake) Now() time.Time {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	return fake.now
}

// Advance moves the clock forward by duration.
func (fake *Fake) Advance(duration time.Duration) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	fake.now = fake.now.Add(duration)
}

// Set jumps the clock to an absolute instant.
func (fake *Fake) Set(instant time.Time) {
	fake.mutex.Lock()
	defer fake.mutex.Unlock()
	fake.now = instant.UTC()
}

package registry

import "sync"

var (
	shared     *TicketRegistry
	sharedOnce sync.Once

	// newShared is swapped in tests to count constructions.
	newShared = New
)

// Shared returns the process-wide registry, creating it with DefaultCapacity
// on first use.
func Shared() *TicketRegistry {
	return InitShared(DefaultCapacity)
}

// InitShared returns the process-wide registry, creating it with capacity if
// no registry exists yet. Only the first call to InitShared or Shared decides
// the capacity.
func InitShared(capacity int) *TicketRegistry {
	sharedOnce.Do(func() {
		shared = newShared(capacity)
	})
	return shared
}

package registry

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetShared(t *testing.T) *atomic.Int32 {
	t.Helper()

	var constructed atomic.Int32
	shared = nil
	sharedOnce = sync.Once{}
	newShared = func(capacity int) *TicketRegistry {
		constructed.Add(1)
		return New(capacity)
	}

	t.Cleanup(func() {
		shared = nil
		sharedOnce = sync.Once{}
		newShared = New
	})

	return &constructed
}

func TestShared_concurrent_first_access(t *testing.T) {
	constructed := resetShared(t)

	const callers = 64
	instances := make([]*TicketRegistry, callers)

	start := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			<-start
			instances[i] = Shared()
		}(i)
	}
	close(start)
	wg.Wait()

	for _, instance := range instances {
		assert.Same(t, instances[0], instance)
	}
	assert.EqualValues(t, 1, constructed.Load())
	assert.Equal(t, DefaultCapacity, instances[0].Capacity())
}

func TestInitShared_first_call_wins(t *testing.T) {
	constructed := resetShared(t)

	first := InitShared(3)
	second := InitShared(42)

	assert.Same(t, first, second)
	assert.Same(t, first, Shared())
	assert.Equal(t, 3, Shared().Capacity())
	assert.EqualValues(t, 1, constructed.Load())
}

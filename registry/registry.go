// Package registry holds the cinema's ticket registry: a fixed number of
// seats shared by every sales channel.
package registry

import (
	"fmt"
	"sync"

	"github.com/samber/lo"

	"cinema/entity"
)

// DefaultCapacity is the number of seats of the cinema's single screen.
const DefaultCapacity = 10

// TicketRegistry records accepted sales against a fixed capacity.
// It is safe for concurrent use.
type TicketRegistry struct {
	capacity int

	mu    sync.RWMutex
	sales []entity.Sale
}

func New(capacity int) *TicketRegistry {
	if capacity < 0 {
		panic(fmt.Sprintf("invalid capacity %d", capacity))
	}

	return &TicketRegistry{
		capacity: capacity,
		sales:    make([]entity.Sale, 0, capacity),
	}
}

// Sell records a sale for customerName when a seat is left.
// It returns entity.ErrSoldOut, leaving the registry untouched, otherwise.
func (r *TicketRegistry) Sell(customerName string, channel entity.Channel) (entity.Receipt, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.sales) >= r.capacity {
		return entity.Receipt{}, entity.ErrSoldOut
	}

	sale := entity.Sale{
		CustomerName: customerName,
		Channel:      channel,
	}
	r.sales = append(r.sales, sale)

	return entity.Receipt{
		Sale:      sale,
		Remaining: r.capacity - len(r.sales),
	}, nil
}

func (r *TicketRegistry) Capacity() int {
	return r.capacity
}

func (r *TicketRegistry) Remaining() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.capacity - len(r.sales)
}

// Sales returns a copy of the accepted sales in acceptance order.
func (r *TicketRegistry) Sales() []entity.Sale {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sales := make([]entity.Sale, len(r.sales))
	copy(sales, r.sales)
	return sales
}

func (r *TicketRegistry) Summary() entity.Summary {
	sales := r.Sales()

	perChannel := make(map[entity.Channel]int, len(entity.Channels))
	for _, channel := range entity.Channels {
		perChannel[channel] = lo.CountBy(sales, func(s entity.Sale) bool {
			return s.Channel == channel
		})
	}

	return entity.Summary{
		TotalCapacity: r.capacity,
		Sold:          len(sales),
		Remaining:     r.capacity - len(sales),
		PerChannel:    perChannel,
		CustomerNames: lo.Map(sales, func(s entity.Sale, _ int) string {
			return s.CustomerName
		}),
	}
}

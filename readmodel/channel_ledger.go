// Package readmodel keeps event-fed projections of ticket sales.
package readmodel

import (
	"context"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"

	"cinema/entity"
)

// ChannelLedger maps every customer to the channel of their latest purchase
// and counts sales per channel. Events are applied at most once, keyed by
// their header id, so redelivered messages are harmless.
type ChannelLedger struct {
	lock sync.RWMutex

	customers map[string]entity.Channel
	tally     map[entity.Channel]int
	applied   map[string]struct{}

	soldOutAt  *time.Time
	lastUpdate time.Time
}

func NewChannelLedger() *ChannelLedger {
	return &ChannelLedger{
		customers: make(map[string]entity.Channel),
		tally:     make(map[entity.Channel]int),
		applied:   make(map[string]struct{}),
	}
}

func (l *ChannelLedger) OnTicketSold(ctx context.Context, event *entity.TicketSold) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.seen(event.Header.ID) {
		log.FromContext(ctx).WithField("event_id", event.Header.ID).Debug("ChannelLedger: TicketSold already applied")
		return nil
	}
	log.FromContext(ctx).Infof("ChannelLedger: OnTicketSold: %s via %s", event.CustomerName, event.Channel)

	l.customers[event.CustomerName] = event.Channel
	l.tally[event.Channel]++
	l.lastUpdate = time.Now()

	return nil
}

func (l *ChannelLedger) OnCinemaSoldOut(ctx context.Context, event *entity.CinemaSoldOut) error {
	l.lock.Lock()
	defer l.lock.Unlock()

	if l.seen(event.Header.ID) {
		return nil
	}
	log.FromContext(ctx).Infof("ChannelLedger: OnCinemaSoldOut: all %d seats sold", event.Capacity)

	soldOutAt := event.Header.PublishedAt
	l.soldOutAt = &soldOutAt
	l.lastUpdate = time.Now()

	return nil
}

// seen marks id as applied and reports whether it already was.
// The caller must hold the write lock.
func (l *ChannelLedger) seen(id string) bool {
	if _, ok := l.applied[id]; ok {
		return true
	}
	l.applied[id] = struct{}{}
	return false
}

func (l *ChannelLedger) Customers() map[string]entity.Channel {
	l.lock.RLock()
	defer l.lock.RUnlock()

	customers := make(map[string]entity.Channel, len(l.customers))
	for name, channel := range l.customers {
		customers[name] = channel
	}
	return customers
}

func (l *ChannelLedger) Tally() map[entity.Channel]int {
	l.lock.RLock()
	defer l.lock.RUnlock()

	tally := make(map[entity.Channel]int, len(entity.Channels))
	for _, channel := range entity.Channels {
		tally[channel] = l.tally[channel]
	}
	return tally
}

// Snapshot returns the whole ledger as one consistent copy.
func (l *ChannelLedger) Snapshot() entity.ChannelLedger {
	l.lock.RLock()
	defer l.lock.RUnlock()

	snapshot := entity.ChannelLedger{
		Customers:  make(map[string]entity.Channel, len(l.customers)),
		Tally:      make(map[entity.Channel]int, len(entity.Channels)),
		LastUpdate: l.lastUpdate,
	}
	for name, channel := range l.customers {
		snapshot.Customers[name] = channel
	}
	for _, channel := range entity.Channels {
		snapshot.Tally[channel] = l.tally[channel]
	}
	if l.soldOutAt != nil {
		soldOutAt := *l.soldOutAt
		snapshot.SoldOutAt = &soldOutAt
	}

	return snapshot
}

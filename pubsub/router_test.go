package pubsub_test

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema/entity"
	"cinema/pubsub"
	"cinema/pubsub/bus"
	"cinema/pubsub/event"
	"cinema/readmodel"
)

func TestRouter_feeds_channel_ledger(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := watermill.NopLogger{}
	transport := pubsub.NewGoChannelTransport(logger)

	eventBus, err := bus.NewEventBus(transport.Publisher, logger)
	require.NoError(t, err)

	ledger := readmodel.NewChannelLedger()
	router, err := pubsub.NewWatermillRouter(
		transport,
		event.NewProcessorConfig(transport, logger),
		event.NewHandler(ledger),
		logger,
	)
	require.NoError(t, err)

	finished := make(chan struct{})
	go func() {
		defer close(finished)
		assert.NoError(t, router.Run(ctx))
	}()
	defer func() {
		cancel()
		<-finished
	}()
	<-router.Running()

	require.NoError(t, eventBus.Publish(ctx, entity.TicketSold{
		Header:       entity.NewEventHeader(),
		CustomerName: "Alice",
		Channel:      entity.ChannelBoxOffice,
		Remaining:    9,
	}))
	require.NoError(t, eventBus.Publish(ctx, entity.TicketSaleRejected{
		Header:       entity.NewEventHeader(),
		CustomerName: "Cemre",
		Channel:      entity.ChannelBoxOffice,
		Reason:       entity.ErrSoldOut.Error(),
	}))
	require.NoError(t, eventBus.Publish(ctx, entity.CinemaSoldOut{
		Header:   entity.NewEventHeader(),
		Capacity: 1,
	}))

	assert.EventuallyWithT(
		t,
		func(t *assert.CollectT) {
			snapshot := ledger.Snapshot()
			assert.Equal(t, entity.ChannelBoxOffice, snapshot.Customers["Alice"])
			assert.Equal(t, 1, snapshot.Tally[entity.ChannelBoxOffice])
			assert.NotNil(t, snapshot.SoldOutAt)
		},
		5*time.Second,
		50*time.Millisecond,
	)
}

package readmodel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cinema/entity"
)

func ticketSold(name string, channel entity.Channel) *entity.TicketSold {
	return &entity.TicketSold{
		Header:       entity.NewEventHeader(),
		CustomerName: name,
		Channel:      channel,
	}
}

func TestChannelLedger(t *testing.T) {
	ctx := context.Background()
	ledger := NewChannelLedger()

	t.Run("ticketSold", func(t *testing.T) {
		require.NoError(t, ledger.OnTicketSold(ctx, ticketSold("Alice", entity.ChannelBoxOffice)))
		require.NoError(t, ledger.OnTicketSold(ctx, ticketSold("Homer", entity.ChannelOnline)))

		assert.Equal(t, map[string]entity.Channel{
			"Alice": entity.ChannelBoxOffice,
			"Homer": entity.ChannelOnline,
		}, ledger.Customers())
	})

	t.Run("latestChannelWins", func(t *testing.T) {
		require.NoError(t, ledger.OnTicketSold(ctx, ticketSold("Alice", entity.ChannelOnline)))

		assert.Equal(t, entity.ChannelOnline, ledger.Customers()["Alice"])
		assert.Equal(t, map[entity.Channel]int{
			entity.ChannelBoxOffice: 1,
			entity.ChannelOnline:    2,
		}, ledger.Tally())
	})

	t.Run("redeliveryIsIgnored", func(t *testing.T) {
		event := ticketSold("Bart", entity.ChannelOnline)
		for i := 0; i < 3; i++ {
			require.NoError(t, ledger.OnTicketSold(ctx, event))
		}

		assert.Equal(t, 3, ledger.Tally()[entity.ChannelOnline])
	})

	t.Run("soldOut", func(t *testing.T) {
		assert.Nil(t, ledger.Snapshot().SoldOutAt)

		event := &entity.CinemaSoldOut{Header: entity.NewEventHeader(), Capacity: 10}
		require.NoError(t, ledger.OnCinemaSoldOut(ctx, event))

		snapshot := ledger.Snapshot()
		require.NotNil(t, snapshot.SoldOutAt)
		assert.True(t, event.Header.PublishedAt.Equal(*snapshot.SoldOutAt))
		assert.Len(t, snapshot.Customers, 3)
	})
}

func TestChannelLedger_returns_copies(t *testing.T) {
	ctx := context.Background()
	ledger := NewChannelLedger()
	require.NoError(t, ledger.OnTicketSold(ctx, ticketSold("Lisa", entity.ChannelOnline)))

	customers := ledger.Customers()
	customers["Lisa"] = entity.ChannelBoxOffice
	tally := ledger.Tally()
	tally[entity.ChannelOnline] = 42

	assert.Equal(t, entity.ChannelOnline, ledger.Customers()["Lisa"])
	assert.Equal(t, 1, ledger.Tally()[entity.ChannelOnline])
}

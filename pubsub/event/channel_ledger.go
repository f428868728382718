package event

import (
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
)

func (h Handler) LedgerTicketSoldHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"channel_ledger.OnTicketSold",
		h.ledger.OnTicketSold,
	)
}

func (h Handler) LedgerCinemaSoldOutHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"channel_ledger.OnCinemaSoldOut",
		h.ledger.OnCinemaSoldOut,
	)
}

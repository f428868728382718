package event

import (
	"context"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/sirupsen/logrus"

	"cinema/entity"
)

func (h Handler) SaleRejectedHandler() cqrs.EventHandler {
	return cqrs.NewEventHandler(
		"SaleRejectedHandler",
		func(ctx context.Context, event *entity.TicketSaleRejected) error {
			log.FromContext(ctx).WithFields(logrus.Fields{
				"customer": event.CustomerName,
				"channel":  event.Channel,
				"reason":   event.Reason,
			}).Warn("Turned a customer away")
			return nil
		},
	)
}

package event

import (
	"context"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"

	"cinema/entity"
	"cinema/pubsub/bus"
)

type ChannelLedger interface {
	OnTicketSold(ctx context.Context, event *entity.TicketSold) error
	OnCinemaSoldOut(ctx context.Context, event *entity.CinemaSoldOut) error
}

type Handler struct {
	ledger ChannelLedger
}

func NewHandler(ledger ChannelLedger) Handler {
	if ledger == nil {
		panic("missing ledger")
	}

	return Handler{
		ledger: ledger,
	}
}

type SubscriberFactory interface {
	NewSubscriber(handlerName string) (message.Subscriber, error)
}

func NewProcessorConfig(subscribers SubscriberFactory, watermillLogger watermill.LoggerAdapter) cqrs.EventProcessorConfig {
	return cqrs.EventProcessorConfig{
		SubscriberConstructor: func(params cqrs.EventProcessorSubscriberConstructorParams) (message.Subscriber, error) {
			return subscribers.NewSubscriber(params.HandlerName)
		},
		GenerateSubscribeTopic: func(params cqrs.EventProcessorGenerateSubscribeTopicParams) (string, error) {
			return bus.EventTopic(params.EventName), nil
		},
		Marshaler: bus.Marshaler,
		Logger:    watermillLogger,
	}
}

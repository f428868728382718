package bus

import (
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/components/cqrs"
	"github.com/ThreeDotsLabs/watermill/message"
)

func NewEventBus(pub message.Publisher, logger watermill.LoggerAdapter) (*cqrs.EventBus, error) {
	return cqrs.NewEventBusWithConfig(pub, cqrs.EventBusConfig{
		GeneratePublishTopic: func(params cqrs.GenerateEventPublishTopicParams) (string, error) {
			return EventTopic(params.EventName), nil
		},
		Marshaler: Marshaler,
		Logger:    logger,
	})
}

var Marshaler = cqrs.JSONMarshaler{
	GenerateName: cqrs.StructName,
}

func EventTopic(eventName string) string {
	return "events." + eventName
}

package pubsub

import (
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill-redisstream/pkg/redisstream"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"cinema/tracing"
)

const consumerGroupPrefix = "svc-cinema."

// Transport is the message infrastructure shared by the event bus and the
// router: redis streams when a client is configured, an in-process go
// channel otherwise.
type Transport struct {
	Publisher     message.Publisher
	newSubscriber func(handlerName string) (message.Subscriber, error)
}

func NewTransport(rdb *redis.Client, watermillLogger watermill.LoggerAdapter) (Transport, error) {
	if rdb == nil {
		return NewGoChannelTransport(watermillLogger), nil
	}

	publisher, err := redisstream.NewPublisher(redisstream.PublisherConfig{
		Client: rdb,
	}, watermillLogger)
	if err != nil {
		return Transport{}, err
	}

	return Transport{
		Publisher: decoratePublisher(publisher),
		newSubscriber: func(handlerName string) (message.Subscriber, error) {
			return redisstream.NewSubscriber(redisstream.SubscriberConfig{
				Client:        rdb,
				ConsumerGroup: consumerGroupPrefix + handlerName,
			}, watermillLogger)
		},
	}, nil
}

func NewGoChannelTransport(watermillLogger watermill.LoggerAdapter) Transport {
	goChannel := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	return Transport{
		Publisher: decoratePublisher(goChannel),
		newSubscriber: func(string) (message.Subscriber, error) {
			return goChannel, nil
		},
	}
}

func (t Transport) NewSubscriber(handlerName string) (message.Subscriber, error) {
	return t.newSubscriber(handlerName)
}

func decoratePublisher(publisher message.Publisher) message.Publisher {
	publisher = log.CorrelationPublisherDecorator{Publisher: publisher}
	publisher = tracing.PublisherDecorator{Publisher: publisher}
	return publisher
}

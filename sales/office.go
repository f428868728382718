// Package sales implements ticket offices: named sales points that sell
// seats of a shared registry through one channel.
package sales

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"cinema/entity"
	"cinema/metrics"
)

type TicketRegistry interface {
	Sell(customerName string, channel entity.Channel) (entity.Receipt, error)
	Summary() entity.Summary
	Capacity() int
}

type EventPublisher interface {
	Publish(ctx context.Context, event any) error
}

// Office sells tickets on behalf of one channel. It holds a reference to the
// registry but does not own it: many offices share one registry.
type Office struct {
	name     string
	channel  entity.Channel
	registry TicketRegistry
	eventBus EventPublisher
}

func NewOffice(
	name string,
	channel entity.Channel,
	registry TicketRegistry,
	eventBus EventPublisher,
) *Office {
	if registry == nil {
		panic("missing registry")
	}
	if eventBus == nil {
		panic("missing eventBus")
	}
	if _, err := entity.ParseChannel(string(channel)); err != nil {
		panic(err)
	}

	return &Office{
		name:     name,
		channel:  channel,
		registry: registry,
		eventBus: eventBus,
	}
}

func (o *Office) Name() string {
	return o.name
}

func (o *Office) Channel() entity.Channel {
	return o.channel
}

// Registry returns the registry the office sells from.
func (o *Office) Registry() TicketRegistry {
	return o.registry
}

func (o *Office) Summary() entity.Summary {
	return o.registry.Summary()
}

// Sell sells one ticket to customerName. When no seat is left it returns an
// error matching entity.ErrSoldOut.
func (o *Office) Sell(ctx context.Context, customerName string) (receipt entity.Receipt, err error) {
	ctx, span := otel.Tracer("").Start(ctx, "sell ticket")
	span.SetAttributes(
		attribute.String("office", o.name),
		attribute.String("channel", o.channel.String()),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	logger := log.FromContext(ctx).WithFields(logrus.Fields{
		"office":   o.name,
		"channel":  o.channel,
		"customer": customerName,
	})

	if strings.TrimSpace(customerName) == "" {
		return entity.Receipt{}, entity.ErrInvalidCustomerName
	}

	labels := prometheus.Labels{"channel": o.channel.String(), "office": o.name}

	receipt, err = o.registry.Sell(customerName, o.channel)
	if errors.Is(err, entity.ErrSoldOut) {
		logger.Info("Sale rejected, cinema is fully booked")
		metrics.TicketsRejected.With(labels).Inc()

		pubErr := o.eventBus.Publish(ctx, entity.TicketSaleRejected{
			Header:       entity.NewEventHeader(),
			CustomerName: customerName,
			Channel:      o.channel,
			Reason:       entity.ErrSoldOut.Error(),
		})
		if pubErr != nil {
			return entity.Receipt{}, errors.Join(err, fmt.Errorf("could not publish TicketSaleRejected: %w", pubErr))
		}
		return entity.Receipt{}, err
	}
	if err != nil {
		return entity.Receipt{}, fmt.Errorf("could not sell ticket: %w", err)
	}

	logger.WithField("remaining_seats", receipt.Remaining).Info("Ticket sold")
	metrics.TicketsSold.With(labels).Inc()
	metrics.SeatsRemaining.Set(float64(receipt.Remaining))

	err = o.eventBus.Publish(ctx, entity.TicketSold{
		Header:       entity.NewEventHeader(),
		CustomerName: customerName,
		Channel:      o.channel,
		Remaining:    receipt.Remaining,
	})
	if err != nil {
		return receipt, fmt.Errorf("could not publish TicketSold: %w", err)
	}

	if receipt.Remaining == 0 {
		err = o.eventBus.Publish(ctx, entity.CinemaSoldOut{
			Header:   entity.NewEventHeader(),
			Capacity: o.registry.Capacity(),
		})
		if err != nil {
			return receipt, fmt.Errorf("could not publish CinemaSoldOut: %w", err)
		}
	}

	return receipt, nil
}

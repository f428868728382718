package tracing

import (
	"context"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

type publisherMock struct {
	published []*message.Message
}

func (p *publisherMock) Publish(topic string, messages ...*message.Message) error {
	p.published = append(p.published, messages...)
	return nil
}

func (p *publisherMock) Close() error {
	return nil
}

func TestPublisherDecorator_injects_trace_context(t *testing.T) {
	tp, err := ConfigureTraceProvider("")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, tp.Shutdown(context.Background()))
	}()

	ctx, span := otel.Tracer("").Start(context.Background(), "test")
	defer span.End()

	msg := message.NewMessage(watermill.NewUUID(), []byte("{}"))
	msg.SetContext(ctx)

	pub := &publisherMock{}
	require.NoError(t, PublisherDecorator{Publisher: pub}.Publish("events.TicketSold", msg))

	require.Len(t, pub.published, 1)
	assert.Contains(t, pub.published[0].Metadata.Get("traceparent"), span.SpanContext().TraceID().String())
}

package service

import (
	"context"
	"fmt"
	"io"

	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"cinema/entity"
	"cinema/http"
	"cinema/pubsub"
	"cinema/pubsub/bus"
	"cinema/pubsub/event"
	"cinema/readmodel"
	"cinema/registry"
	"cinema/report"
	"cinema/sales"
	"cinema/simulation"
)

type Options struct {
	HTTPAddr string
	// RedisClient selects redis streams as event transport; nil keeps events in-process.
	RedisClient *redis.Client
	// SimulationOutput, when set, receives the reference sales day once the
	// router is running.
	SimulationOutput io.Writer
}

type Service struct {
	watermillRouter  *message.Router
	httpServer       *http.Server
	offices          simulation.Offices
	simulationOutput io.Writer
}

// New wires a service around reg. The registry is shared, not owned: every
// office holds a reference to the same instance.
func New(reg *registry.TicketRegistry, opts Options) (Service, error) {
	if reg == nil {
		panic("missing registry")
	}

	watermillLogger := log.NewWatermill(log.FromContext(context.Background()))

	transport, err := pubsub.NewTransport(opts.RedisClient, watermillLogger)
	if err != nil {
		return Service{}, fmt.Errorf("could not create transport: %w", err)
	}

	eventBus, err := bus.NewEventBus(transport.Publisher, watermillLogger)
	if err != nil {
		return Service{}, fmt.Errorf("could not create event bus: %w", err)
	}

	ledger := readmodel.NewChannelLedger()

	watermillRouter, err := pubsub.NewWatermillRouter(
		transport,
		event.NewProcessorConfig(transport, watermillLogger),
		event.NewHandler(ledger),
		watermillLogger,
	)
	if err != nil {
		return Service{}, fmt.Errorf("could not create watermill router: %w", err)
	}

	offices := simulation.Offices{
		BoxOffice1: sales.NewOffice("box-office-1", entity.ChannelBoxOffice, reg, eventBus),
		BoxOffice2: sales.NewOffice("box-office-2", entity.ChannelBoxOffice, reg, eventBus),
		Online:     sales.NewOffice("online", entity.ChannelOnline, reg, eventBus),
	}

	httpServer := http.NewServer(
		opts.HTTPAddr,
		reg,
		ledger,
		offices.BoxOffice1,
		offices.Online,
	)

	return Service{
		watermillRouter:  watermillRouter,
		httpServer:       httpServer,
		offices:          offices,
		simulationOutput: opts.SimulationOutput,
	}, nil
}

func (s Service) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return s.watermillRouter.Run(ctx)
	})

	g.Go(func() error {
		// we don't want to start HTTP server before Watermill router (so service won't be healthy before it's ready)
		<-s.watermillRouter.Running()

		return s.httpServer.Run(ctx)
	})

	if s.simulationOutput != nil {
		g.Go(func() error {
			select {
			case <-s.watermillRouter.Running():
			case <-ctx.Done():
				return nil
			}

			summary, err := simulation.Run(ctx, s.simulationOutput, s.offices)
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}
			log.FromContext(ctx).
				WithField("sold", summary.Sold).
				WithField("remaining", summary.Remaining).
				Info("Simulation finished")
			return nil
		})
	}

	return g.Wait()
}

// Summary renders the registry's current state, the way the counters print it.
func (s Service) Summary(w io.Writer) error {
	return report.WriteSummary(w, s.offices.Online.Summary())
}

package http

import (
	"context"
	"errors"
	"net/http"

	echoHTTP "github.com/ThreeDotsLabs/go-event-driven/common/http"
	"github.com/ThreeDotsLabs/go-event-driven/common/log"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"

	"cinema/entity"
)

type TicketOffice interface {
	Channel() entity.Channel
	Sell(ctx context.Context, customerName string) (entity.Receipt, error)
}

type SummaryProvider interface {
	Summary() entity.Summary
}

type ChannelLedger interface {
	Snapshot() entity.ChannelLedger
}

type Server struct {
	addr     string
	e        *echo.Echo
	offices  map[entity.Channel]TicketOffice
	registry SummaryProvider
	ledger   ChannelLedger
}

// NewServer exposes the offices over HTTP. Sales for a channel go to the
// first office given for it.
func NewServer(
	addr string,
	registry SummaryProvider,
	ledger ChannelLedger,
	offices ...TicketOffice,
) *Server {
	if registry == nil {
		panic("missing registry")
	}
	if ledger == nil {
		panic("missing ledger")
	}

	e := echoHTTP.NewEcho()
	e.Use(otelecho.Middleware("cinema"))

	server := &Server{
		addr:     addr,
		e:        e,
		offices:  make(map[entity.Channel]TicketOffice, len(offices)),
		registry: registry,
		ledger:   ledger,
	}
	for _, office := range offices {
		if _, ok := server.offices[office.Channel()]; !ok {
			server.offices[office.Channel()] = office
		}
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	e.POST("/tickets", server.PostTickets)
	e.GET("/summary", server.GetSummary)
	e.GET("/ops/ledger", server.GetLedger)

	return server
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		err := s.e.Shutdown(context.Background())
		if err != nil {
			log.FromContext(ctx).WithError(err).Error("failed to shutdown HTTP server")
		}
	}()
	log.FromContext(ctx).WithField("addr", s.addr).Info("[HTTP] server listening")
	if err := s.e.Start(s.addr); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

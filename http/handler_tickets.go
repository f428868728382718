package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"cinema/entity"
)

type postTicketRequest struct {
	CustomerName string `json:"customer_name"`
	Channel      string `json:"channel"`
}

type postTicketResponse struct {
	CustomerName   string         `json:"customer_name"`
	Channel        entity.Channel `json:"channel"`
	RemainingSeats int            `json:"remaining_seats"`
}

func (s Server) PostTickets(c echo.Context) error {
	var request postTicketRequest
	err := c.Bind(&request)
	if err != nil {
		return err
	}

	channel, err := entity.ParseChannel(request.Channel)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	office, ok := s.offices[channel]
	if !ok {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("no office sells through %s", channel))
	}

	receipt, err := office.Sell(c.Request().Context(), request.CustomerName)
	switch {
	case errors.Is(err, entity.ErrSoldOut):
		return echo.NewHTTPError(http.StatusConflict, entity.ErrSoldOut.Error())
	case errors.Is(err, entity.ErrInvalidCustomerName):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case err != nil:
		return fmt.Errorf("could not sell ticket: %w", err)
	}

	return c.JSON(http.StatusCreated, postTicketResponse{
		CustomerName:   receipt.Sale.CustomerName,
		Channel:        receipt.Sale.Channel,
		RemainingSeats: receipt.Remaining,
	})
}

func (s Server) GetSummary(c echo.Context) error {
	return c.JSON(http.StatusOK, s.registry.Summary())
}

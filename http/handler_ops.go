package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s Server) GetLedger(c echo.Context) error {
	return c.JSON(http.StatusOK, s.ledger.Snapshot())
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dhilip1/sreeGuruLivingSpace/internal/panchang"
)

type panchangReq struct {
	Date string `json:"date"`
}

// Panchang derives the almanac attributes for the requested date. The
// derivation is pure, so nothing is persisted; the same date always
// produces the same response. Clients may send a bare date or a full
// RFC 3339 timestamp; any time component is ignored.
func Panchang(c echo.Context) error {
	var req panchangReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Invalid request body"})
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		date, err = time.Parse(time.RFC3339, req.Date)
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "Please enter a valid date."})
	}

	return c.JSON(http.StatusOK, panchang.Compute(date))
}

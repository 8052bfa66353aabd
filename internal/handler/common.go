package handler // handler defines the HTTP handlers of the roster API

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/bus-seat-roster/internal/repository"
	"github.com/iliyamo/bus-seat-roster/internal/seating"
	"github.com/iliyamo/bus-seat-roster/internal/service"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// bind decodes the request body into dst and runs its validate tags.
// Failures are written as 400 responses; the returned bool tells the
// caller whether to continue.
func bind(c echo.Context, dst interface{}) (bool, error) {
	if err := c.Bind(dst); err != nil {
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := validate.Struct(dst); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return false, c.JSON(http.StatusBadRequest, echo.Map{
				"error": "invalid field",
				"field": verrs[0].Field(),
				"rule":  verrs[0].Tag(),
			})
		}
		return false, c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	return true, nil
}

// writeError maps planner and storage errors onto status codes.  Seat
// validation failures carry the offending seat numbers.
func writeError(c echo.Context, err error) error {
	var invalid *seating.InvalidSeatNumberError
	var dup *seating.DuplicateSeatNumberError
	switch {
	case errors.As(err, &invalid):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": err.Error(),
			"code":  "invalid_seat_number",
			"seats": invalid.Seats,
		})
	case errors.As(err, &dup):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{
			"error": err.Error(),
			"code":  "duplicate_seat_number",
			"seats": dup.Seats,
		})
	case errors.Is(err, service.ErrEmptyInput):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "code": "empty_input"})
	case errors.Is(err, service.ErrNoPassengers):
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error(), "code": "no_passengers"})
	case errors.Is(err, repository.ErrRosterNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no roster committed"})
	}
	log.Printf("handler: %s %s: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

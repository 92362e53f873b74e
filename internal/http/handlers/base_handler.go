// README: Shared handler utilities (JSON helpers, id parsing, domain error mapping).
package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"fleetops/internal/modules/driver"
	"fleetops/internal/modules/fuel"
	"fleetops/internal/modules/maintenance"
	"fleetops/internal/modules/trip"
	"fleetops/internal/modules/user"
	"fleetops/internal/modules/vehicle"
)

var validate = validator.New()

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(c *gin.Context, status int, v any) {
	c.JSON(status, v)
}

func writeError(c *gin.Context, status int, msg string) {
	writeJSON(c, status, errorResponse{Error: msg})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// writeDomainError maps module errors onto HTTP statuses in one place so
// every handler reports the taxonomy consistently.
func writeDomainError(c *gin.Context, err error) {
	var capacityErr *trip.CapacityError
	var licenseErr *trip.LicenseExpiredError
	var transitionErr *trip.InvalidTransitionError

	switch {
	case errors.Is(err, vehicle.ErrNotFound),
		errors.Is(err, driver.ErrNotFound),
		errors.Is(err, trip.ErrNotFound),
		errors.Is(err, maintenance.ErrNotFound),
		errors.Is(err, maintenance.ErrVehicleNotFound),
		errors.Is(err, fuel.ErrTripNotFound),
		errors.Is(err, user.ErrNotFound):
		writeError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, vehicle.ErrConflict),
		errors.Is(err, driver.ErrConflict),
		errors.Is(err, user.ErrEmailTaken):
		writeError(c, http.StatusConflict, err.Error())
	case errors.As(err, &transitionErr):
		writeError(c, http.StatusConflict, err.Error())
	case errors.As(err, &capacityErr), errors.As(err, &licenseErr):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, vehicle.ErrValidation),
		errors.Is(err, driver.ErrValidation),
		errors.Is(err, trip.ErrValidation),
		errors.Is(err, maintenance.ErrValidation),
		errors.Is(err, fuel.ErrValidation),
		errors.Is(err, user.ErrValidation):
		writeError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrInvalidCredentials):
		writeError(c, http.StatusUnauthorized, err.Error())
	default:
		writeError(c, http.StatusInternalServerError, "internal error")
	}
}

// parseDate accepts bare dates and full RFC3339 timestamps.
func parseDate(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, v)
}

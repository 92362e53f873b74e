// README: Driver registry handlers (register, list, expiring-soon, patch).
package handlers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"

    "fleetops/internal/modules/driver"
)

type DriverHandler struct {
    drivers *driver.Service
}

func NewDriverHandler(svc *driver.Service) *DriverHandler {
    return &DriverHandler{drivers: svc}
}

type registerDriverReq struct {
    Name          string `json:"name" binding:"required"`
    LicenseNumber string `json:"license_number" binding:"required"`
    LicenseExpiry string `json:"license_expiry" binding:"required"`
    DutyStatus    string `json:"duty_status"`
}

type driverResponse struct {
    ID             int64     `json:"id"`
    Name           string    `json:"name"`
    LicenseNumber  string    `json:"license_number"`
    LicenseExpiry  time.Time `json:"license_expiry"`
    DutyStatus     string    `json:"duty_status"`
    SafetyScore    int       `json:"safety_score"`
    TripsCompleted int       `json:"trips_completed"`
    TripsTotal     int       `json:"trips_total"`
    CreatedAt      time.Time `json:"created_at"`
}

func toDriverResponse(d *driver.Driver) driverResponse {
    return driverResponse{
        ID:             d.ID,
        Name:           d.Name,
        LicenseNumber:  d.LicenseNumber,
        LicenseExpiry:  d.LicenseExpiry,
        DutyStatus:     string(d.DutyStatus),
        SafetyScore:    d.SafetyScore,
        TripsCompleted: d.TripsCompleted,
        TripsTotal:     d.TripsTotal,
        CreatedAt:      d.CreatedAt,
    }
}

func (h *DriverHandler) Register(c *gin.Context) {
    var req registerDriverReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    expiry, err := parseDate(req.LicenseExpiry)
    if err != nil {
        writeError(c, http.StatusBadRequest, "license_expiry must be an ISO date")
        return
    }
    d, err := h.drivers.Register(c.Request.Context(), driver.RegisterCommand{
        Name:          req.Name,
        LicenseNumber: req.LicenseNumber,
        LicenseExpiry: expiry,
        DutyStatus:    driver.DutyStatus(req.DutyStatus),
    })
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusCreated, toDriverResponse(d))
}

func (h *DriverHandler) List(c *gin.Context) {
    drivers, err := h.drivers.List(c.Request.Context())
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toDriverResponses(drivers))
}

func (h *DriverHandler) ListExpiringSoon(c *gin.Context) {
    drivers, err := h.drivers.ListExpiringSoon(c.Request.Context())
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toDriverResponses(drivers))
}

func (h *DriverHandler) Patch(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
        return
    }
    var fields map[string]any
    if err := c.ShouldBindJSON(&fields); err != nil {
        writeError(c, http.StatusBadRequest, "invalid json")
        return
    }
    // Date fields arrive as strings; normalize before the store sees them.
    if raw, ok := fields["license_expiry"].(string); ok {
        expiry, err := parseDate(raw)
        if err != nil {
            writeError(c, http.StatusBadRequest, "license_expiry must be an ISO date")
            return
        }
        fields["license_expiry"] = expiry
    }
    d, err := h.drivers.UpdateFields(c.Request.Context(), id, fields)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toDriverResponse(d))
}

func toDriverResponses(drivers []driver.Driver) []driverResponse {
    out := make([]driverResponse, 0, len(drivers))
    for i := range drivers {
        out = append(out, toDriverResponse(&drivers[i]))
    }
    return out
}

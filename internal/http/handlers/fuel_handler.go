// README: Fuel log handlers (record, list).
package handlers

import (
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"

    "fleetops/internal/modules/fuel"
)

type FuelHandler struct {
    fuel *fuel.Service
}

func NewFuelHandler(svc *fuel.Service) *FuelHandler {
    return &FuelHandler{fuel: svc}
}

type recordFuelReq struct {
    TripID          int64   `json:"trip_id" binding:"required,gt=0"`
    Liters          float64 `json:"liters" binding:"required,gt=0"`
    CostCents       int64   `json:"cost_cents" binding:"gte=0"`
    OdometerReading int     `json:"odometer_reading" binding:"gte=0"`
    Date            string  `json:"date" binding:"required"`
}

type fuelResponse struct {
    ID              int64     `json:"id"`
    TripID          int64     `json:"trip_id"`
    Liters          float64   `json:"liters"`
    CostCents       int64     `json:"cost_cents"`
    OdometerReading int       `json:"odometer_reading"`
    Date            time.Time `json:"date"`
    CreatedAt       time.Time `json:"created_at"`
}

func toFuelResponse(l *fuel.Log) fuelResponse {
    return fuelResponse{
        ID:              l.ID,
        TripID:          l.TripID,
        Liters:          l.Liters,
        CostCents:       l.Cost.Amount,
        OdometerReading: l.OdometerReading,
        Date:            l.Date,
        CreatedAt:       l.CreatedAt,
    }
}

func (h *FuelHandler) Record(c *gin.Context) {
    var req recordFuelReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    date, err := parseDate(req.Date)
    if err != nil {
        writeError(c, http.StatusBadRequest, "date must be an ISO date")
        return
    }
    l, err := h.fuel.Record(c.Request.Context(), fuel.RecordCommand{
        TripID:          req.TripID,
        Liters:          req.Liters,
        CostCents:       req.CostCents,
        OdometerReading: req.OdometerReading,
        Date:            date,
    })
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusCreated, toFuelResponse(l))
}

func (h *FuelHandler) List(c *gin.Context) {
    var tripID int64
    if v := c.Query("trip_id"); v != "" {
        parsed, err := strconv.ParseInt(v, 10, 64)
        if err != nil || parsed <= 0 {
            writeError(c, http.StatusBadRequest, "invalid trip_id")
            return
        }
        tripID = parsed
    }
    logs, err := h.fuel.List(c.Request.Context(), tripID)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    out := make([]fuelResponse, 0, len(logs))
    for i := range logs {
        out = append(out, toFuelResponse(&logs[i]))
    }
    writeJSON(c, http.StatusOK, out)
}

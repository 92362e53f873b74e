// README: Trip handlers (create, list, get, status transition).
package handlers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"

    "fleetops/internal/modules/trip"
)

type TripHandler struct {
    trips *trip.Service
}

func NewTripHandler(svc *trip.Service) *TripHandler {
    return &TripHandler{trips: svc}
}

type createTripReq struct {
    VehicleID     int64  `json:"vehicle_id" binding:"required,gt=0"`
    DriverID      int64  `json:"driver_id" binding:"required,gt=0"`
    CargoWeightKg int    `json:"cargo_weight_kg" binding:"required,gt=0"`
    Origin        string `json:"origin" binding:"required"`
    Destination   string `json:"destination" binding:"required"`
}

type transitionReq struct {
    Status        string `json:"status" binding:"required"`
    FinalOdometer *int   `json:"final_odometer"`
}

type tripResponse struct {
    ID                int64     `json:"id"`
    VehicleID         int64     `json:"vehicle_id"`
    DriverID          int64     `json:"driver_id"`
    CargoWeightKg     int       `json:"cargo_weight_kg"`
    Origin            string    `json:"origin"`
    Destination       string    `json:"destination"`
    Status            string    `json:"status"`
    StartOdometer     *int      `json:"start_odometer,omitempty"`
    FinalOdometer     *int      `json:"final_odometer,omitempty"`
    FuelLiters        float64   `json:"fuel_liters"`
    FuelEfficiencyKmL *float64  `json:"fuel_efficiency_kml,omitempty"`
    CreatedAt         time.Time `json:"created_at"`
}

func toTripResponse(t *trip.Trip) tripResponse {
    return tripResponse{
        ID:                t.ID,
        VehicleID:         t.VehicleID,
        DriverID:          t.DriverID,
        CargoWeightKg:     t.CargoWeightKg,
        Origin:            t.Origin,
        Destination:       t.Destination,
        Status:            string(t.Status),
        StartOdometer:     t.StartOdometer,
        FinalOdometer:     t.FinalOdometer,
        FuelLiters:        t.FuelLiters,
        FuelEfficiencyKmL: t.FuelEfficiencyKmL,
        CreatedAt:         t.CreatedAt,
    }
}

func (h *TripHandler) Create(c *gin.Context) {
    var req createTripReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    t, err := h.trips.Create(c.Request.Context(), trip.CreateCommand{
        VehicleID:     req.VehicleID,
        DriverID:      req.DriverID,
        CargoWeightKg: req.CargoWeightKg,
        Origin:        req.Origin,
        Destination:   req.Destination,
    })
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusCreated, toTripResponse(t))
}

func (h *TripHandler) List(c *gin.Context) {
    trips, err := h.trips.List(c.Request.Context(), trip.Status(c.Query("status")))
    if err != nil {
        writeDomainError(c, err)
        return
    }
    out := make([]tripResponse, 0, len(trips))
    for i := range trips {
        out = append(out, toTripResponse(&trips[i]))
    }
    writeJSON(c, http.StatusOK, out)
}

func (h *TripHandler) Get(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
        return
    }
    t, err := h.trips.Get(c.Request.Context(), id)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toTripResponse(t))
}

func (h *TripHandler) Transition(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
        return
    }
    var req transitionReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    t, err := h.trips.TransitionStatus(c.Request.Context(), trip.TransitionCommand{
        TripID:        id,
        To:            trip.Status(req.Status),
        FinalOdometer: req.FinalOdometer,
    })
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toTripResponse(t))
}

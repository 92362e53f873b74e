// README: Vehicle registry handlers (register, list, get, administrative patch).
package handlers

import (
    "net/http"
    "time"

    "github.com/gin-gonic/gin"

    "fleetops/internal/modules/vehicle"
)

type VehicleHandler struct {
    vehicles *vehicle.Service
}

func NewVehicleHandler(svc *vehicle.Service) *VehicleHandler {
    return &VehicleHandler{vehicles: svc}
}

type registerVehicleReq struct {
    Name                 string `json:"name" binding:"required"`
    LicensePlate         string `json:"license_plate" binding:"required"`
    Category             string `json:"category" binding:"required,oneof=Truck Van Bike"`
    MaxCapacityKg        int    `json:"max_capacity_kg" binding:"required,gt=0"`
    AcquisitionCostCents int64  `json:"acquisition_cost_cents" binding:"gte=0"`
    Region               string `json:"region"`
}

type vehicleResponse struct {
    ID                        int64     `json:"id"`
    Name                      string    `json:"name"`
    LicensePlate              string    `json:"license_plate"`
    Category                  string    `json:"category"`
    MaxCapacityKg             int       `json:"max_capacity_kg"`
    Odometer                  int       `json:"odometer"`
    AcquisitionCostCents      int64     `json:"acquisition_cost_cents"`
    Region                    string    `json:"region"`
    Status                    string    `json:"status"`
    CreatedAt                 time.Time `json:"created_at"`
    TotalMaintenanceCostCents *int64    `json:"total_maintenance_cost_cents,omitempty"`
}

func toVehicleResponse(v *vehicle.Vehicle) vehicleResponse {
    resp := vehicleResponse{
        ID:                   v.ID,
        Name:                 v.Name,
        LicensePlate:         v.LicensePlate,
        Category:             string(v.Category),
        MaxCapacityKg:        v.MaxCapacityKg,
        Odometer:             v.Odometer,
        AcquisitionCostCents: v.AcquisitionCost.Amount,
        Region:               v.Region,
        Status:               string(v.Status),
        CreatedAt:            v.CreatedAt,
    }
    if v.TotalMaintenanceCost != nil {
        resp.TotalMaintenanceCostCents = &v.TotalMaintenanceCost.Amount
    }
    return resp
}

func (h *VehicleHandler) Register(c *gin.Context) {
    var req registerVehicleReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    v, err := h.vehicles.Register(c.Request.Context(), vehicle.RegisterCommand{
        Name:                 req.Name,
        LicensePlate:         req.LicensePlate,
        Category:             vehicle.Category(req.Category),
        MaxCapacityKg:        req.MaxCapacityKg,
        AcquisitionCostCents: req.AcquisitionCostCents,
        Region:               req.Region,
    })
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusCreated, toVehicleResponse(v))
}

func (h *VehicleHandler) List(c *gin.Context) {
    f := vehicle.ListFilter{
        Status:   vehicle.Status(c.Query("status")),
        Category: vehicle.Category(c.Query("category")),
        Region:   c.Query("region"),
    }
    vehicles, err := h.vehicles.List(c.Request.Context(), f)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    out := make([]vehicleResponse, 0, len(vehicles))
    for i := range vehicles {
        out = append(out, toVehicleResponse(&vehicles[i]))
    }
    writeJSON(c, http.StatusOK, out)
}

func (h *VehicleHandler) Get(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
        return
    }
    v, err := h.vehicles.Get(c.Request.Context(), id)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toVehicleResponse(v))
}

func (h *VehicleHandler) Patch(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
        return
    }
    var fields map[string]any
    if err := c.ShouldBindJSON(&fields); err != nil {
        writeError(c, http.StatusBadRequest, "invalid json")
        return
    }
    v, err := h.vehicles.UpdateFields(c.Request.Context(), id, fields)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toVehicleResponse(v))
}

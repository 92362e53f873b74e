// README: Maintenance handlers (open, close, list).
package handlers

import (
    "net/http"
    "strconv"
    "time"

    "github.com/gin-gonic/gin"

    "fleetops/internal/modules/maintenance"
)

type MaintenanceHandler struct {
    maintenance *maintenance.Service
}

func NewMaintenanceHandler(svc *maintenance.Service) *MaintenanceHandler {
    return &MaintenanceHandler{maintenance: svc}
}

type openMaintenanceReq struct {
    VehicleID   int64  `json:"vehicle_id" binding:"required,gt=0"`
    ServiceType string `json:"service_type" binding:"required"`
    CostCents   int64  `json:"cost_cents" binding:"gte=0"`
    Date        string `json:"date" binding:"required"`
    Notes       string `json:"notes"`
}

type maintenanceResponse struct {
    ID          int64     `json:"id"`
    VehicleID   int64     `json:"vehicle_id"`
    VehicleName string    `json:"vehicle_name,omitempty"`
    ServiceType string    `json:"service_type"`
    CostCents   int64     `json:"cost_cents"`
    Date        time.Time `json:"date"`
    Notes       string    `json:"notes,omitempty"`
    Status      string    `json:"status"`
    CreatedAt   time.Time `json:"created_at"`
}

func toMaintenanceResponse(l *maintenance.Log) maintenanceResponse {
    return maintenanceResponse{
        ID:          l.ID,
        VehicleID:   l.VehicleID,
        VehicleName: l.VehicleName,
        ServiceType: l.ServiceType,
        CostCents:   l.Cost.Amount,
        Date:        l.Date,
        Notes:       l.Notes,
        Status:      string(l.Status),
        CreatedAt:   l.CreatedAt,
    }
}

func (h *MaintenanceHandler) Open(c *gin.Context) {
    var req openMaintenanceReq
    if err := c.ShouldBindJSON(&req); err != nil {
        writeError(c, http.StatusBadRequest, err.Error())
        return
    }
    date, err := parseDate(req.Date)
    if err != nil {
        writeError(c, http.StatusBadRequest, "date must be an ISO date")
        return
    }
    l, err := h.maintenance.Open(c.Request.Context(), maintenance.OpenCommand{
        VehicleID:   req.VehicleID,
        ServiceType: req.ServiceType,
        CostCents:   req.CostCents,
        Date:        date,
        Notes:       req.Notes,
    })
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusCreated, toMaintenanceResponse(l))
}

func (h *MaintenanceHandler) Close(c *gin.Context) {
    id, ok := pathID(c)
    if !ok {
        return
    }
    l, err := h.maintenance.Close(c.Request.Context(), id)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, toMaintenanceResponse(l))
}

func (h *MaintenanceHandler) List(c *gin.Context) {
    var vehicleID int64
    if v := c.Query("vehicle_id"); v != "" {
        parsed, err := strconv.ParseInt(v, 10, 64)
        if err != nil || parsed <= 0 {
            writeError(c, http.StatusBadRequest, "invalid vehicle_id")
            return
        }
        vehicleID = parsed
    }
    logs, err := h.maintenance.List(c.Request.Context(), vehicleID)
    if err != nil {
        writeDomainError(c, err)
        return
    }
    out := make([]maintenanceResponse, 0, len(logs))
    for i := range logs {
        out = append(out, toMaintenanceResponse(&logs[i]))
    }
    writeJSON(c, http.StatusOK, out)
}

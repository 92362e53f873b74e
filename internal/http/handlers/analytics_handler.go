// README: Analytics handlers (summary, monthly rollup, dashboard stats).
package handlers

import (
    "net/http"

    "github.com/gin-gonic/gin"

    "fleetops/internal/modules/analytics"
)

type AnalyticsHandler struct {
    analytics *analytics.Service
}

func NewAnalyticsHandler(svc *analytics.Service) *AnalyticsHandler {
    return &AnalyticsHandler{analytics: svc}
}

func (h *AnalyticsHandler) Summary(c *gin.Context) {
    sum, err := h.analytics.Summary(c.Request.Context())
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, sum)
}

func (h *AnalyticsHandler) Monthly(c *gin.Context) {
    rows, err := h.analytics.Monthly(c.Request.Context())
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, rows)
}

func (h *AnalyticsHandler) DashboardStats(c *gin.Context) {
    stats, err := h.analytics.DashboardStats(c.Request.Context())
    if err != nil {
        writeDomainError(c, err)
        return
    }
    writeJSON(c, http.StatusOK, stats)
}

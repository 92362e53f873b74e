// README: HTTP router registration; auth gates every route except login/register/health.
package http

import (
    "net/http"

    "github.com/gin-contrib/cors"
    "github.com/gin-gonic/gin"
    "go.uber.org/zap"

    "fleetops/internal/auth"
    "fleetops/internal/http/handlers"
    "fleetops/internal/http/middleware"
    "fleetops/internal/modules/analytics"
    "fleetops/internal/modules/driver"
    "fleetops/internal/modules/fuel"
    "fleetops/internal/modules/maintenance"
    "fleetops/internal/modules/trip"
    "fleetops/internal/modules/user"
    "fleetops/internal/modules/vehicle"
)

type RouterDeps struct {
    Vehicles    *vehicle.Service
    Drivers     *driver.Service
    Trips       *trip.Service
    Maintenance *maintenance.Service
    Fuel        *fuel.Service
    Analytics   *analytics.Service
    Users       *user.Service
    Tokens      *auth.TokenManager

    AllowedOrigins []string
    Logger         *zap.Logger
}

func NewRouter(deps RouterDeps) http.Handler {
    r := gin.New()
    r.Use(middleware.Logging(deps.Logger))
    r.Use(middleware.Recovery(deps.Logger))
    r.Use(cors.New(cors.Config{
        AllowOrigins:     deps.AllowedOrigins,
        AllowMethods:     []string{"GET", "POST", "PATCH", "OPTIONS"},
        AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
        AllowCredentials: true,
    }))

    r.GET("/health", func(c *gin.Context) {
        c.String(http.StatusOK, "OK")
    })

    authHandler := handlers.NewAuthHandler(deps.Users, deps.Tokens)
    r.POST("/api/auth/register", authHandler.Register)
    r.POST("/api/auth/login", authHandler.Login)

    api := r.Group("/api", middleware.Auth(deps.Tokens))

    vehicleHandler := handlers.NewVehicleHandler(deps.Vehicles)
    api.GET("/vehicles", vehicleHandler.List)
    api.POST("/vehicles", vehicleHandler.Register)
    api.GET("/vehicles/:id", vehicleHandler.Get)
    api.PATCH("/vehicles/:id", vehicleHandler.Patch)

    driverHandler := handlers.NewDriverHandler(deps.Drivers)
    api.GET("/drivers", driverHandler.List)
    api.GET("/drivers/expiring-soon", driverHandler.ListExpiringSoon)
    api.POST("/drivers", driverHandler.Register)
    api.PATCH("/drivers/:id", driverHandler.Patch)

    tripHandler := handlers.NewTripHandler(deps.Trips)
    api.GET("/trips", tripHandler.List)
    api.POST("/trips", tripHandler.Create)
    api.GET("/trips/:id", tripHandler.Get)
    api.PATCH("/trips/:id/status", tripHandler.Transition)

    maintenanceHandler := handlers.NewMaintenanceHandler(deps.Maintenance)
    api.GET("/maintenance", maintenanceHandler.List)
    api.POST("/maintenance", maintenanceHandler.Open)
    api.PATCH("/maintenance/:id/close", maintenanceHandler.Close)

    fuelHandler := handlers.NewFuelHandler(deps.Fuel)
    api.GET("/fuel", fuelHandler.List)
    api.POST("/fuel", fuelHandler.Record)

    analyticsHandler := handlers.NewAnalyticsHandler(deps.Analytics)
    api.GET("/analytics/summary", analyticsHandler.Summary)
    api.GET("/analytics/monthly", analyticsHandler.Monthly)
    api.GET("/dashboard/stats", analyticsHandler.DashboardStats)

    return r
}

// README: Entry point; loads config, wires stores and services, starts the HTTP server.
package main

import (
    "context"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    "go.uber.org/zap"

    "fleetops/internal/auth"
    "fleetops/internal/config"
    httptransport "fleetops/internal/http"
    "fleetops/internal/infra"
    "fleetops/internal/logger"
    "fleetops/internal/modules/analytics"
    "fleetops/internal/modules/driver"
    "fleetops/internal/modules/fuel"
    "fleetops/internal/modules/maintenance"
    "fleetops/internal/modules/trip"
    "fleetops/internal/modules/user"
    "fleetops/internal/modules/vehicle"
)

func main() {
    cfg, err := config.Load()
    if err != nil {
        panic(err)
    }
    log := logger.New(cfg.Log.Level)
    defer log.Sync()

    ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
    defer stop()

    dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
    if err != nil {
        log.Fatal("database init", zap.Error(err))
    }
    defer dbPool.Close()

    redisClient := infra.NewRedis(cfg.Redis.Addr)

    vehicleSvc := vehicle.NewService(vehicle.NewStore(dbPool))
    driverSvc := driver.NewService(driver.NewStore(dbPool))
    tripSvc := trip.NewService(trip.NewStore(dbPool), vehicleSvc, driverSvc)
    maintenanceSvc := maintenance.NewService(maintenance.NewStore(dbPool))
    fuelSvc := fuel.NewService(fuel.NewStore(dbPool))
    analyticsSvc := analytics.NewService(analytics.NewStore(dbPool), redisClient, cfg.Analytics)
    userSvc := user.NewService(user.NewStore(dbPool))
    tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiry)

    handler := httptransport.NewRouter(httptransport.RouterDeps{
        Vehicles:       vehicleSvc,
        Drivers:        driverSvc,
        Trips:          tripSvc,
        Maintenance:    maintenanceSvc,
        Fuel:           fuelSvc,
        Analytics:      analyticsSvc,
        Users:          userSvc,
        Tokens:         tokens,
        AllowedOrigins: cfg.HTTP.AllowedOrigins,
        Logger:         log,
    })

    server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

    go func() {
        <-ctx.Done()
        shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
        defer cancel()
        _ = server.Shutdown(shutdownCtx)
    }()

    log.Info("listening", zap.String("addr", cfg.HTTP.Addr))
    if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
        log.Fatal("server", zap.Error(err))
    }
}

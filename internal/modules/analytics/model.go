// README: Read models for dashboard KPIs and financial rollups.
package analytics

type Summary struct {
    UtilizationRate          int   `json:"utilization_rate"`
    TotalVehicles            int   `json:"total_vehicles"`
    TotalAcquisitionCents    int64 `json:"total_acquisition_cents"`
    TotalMaintenanceCents    int64 `json:"total_maintenance_cents"`
    FleetCostPerVehicleCents int64 `json:"fleet_cost_per_vehicle_cents"`
}

type MonthlyRow struct {
    Month                string `json:"month"` // YYYY-MM
    RevenueCents         int64  `json:"revenue_cents"`
    MaintenanceCostCents int64  `json:"maintenance_cost_cents"`
    EstimatedFuelCents   int64  `json:"estimated_fuel_cents"`
    NetProfitCents       int64  `json:"net_profit_cents"`
}

type DashboardStats struct {
    ActiveFleet       int `json:"active_fleet"`
    MaintenanceAlerts int `json:"maintenance_alerts"`
    UtilizationRate   int `json:"utilization_rate"`
    PendingCargoKg    int `json:"pending_cargo_kg"`
}

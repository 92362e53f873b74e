// README: Analytics store; read-only aggregate queries over committed state.
package analytics

import (
    "context"

    "github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
    db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
    return &Store{db: db}
}

// fleetCounts returns vehicles counted as active (Available or On Trip)
// and the non-retired total.
func (s *Store) fleetCounts(ctx context.Context) (active, total int, err error) {
    err = s.db.QueryRow(ctx, `
        SELECT COUNT(*) FILTER (WHERE status IN ('Available', 'On Trip')),
               COUNT(*) FILTER (WHERE status != 'Retired')
        FROM vehicles`).Scan(&active, &total)
    return active, total, err
}

func (s *Store) Summary(ctx context.Context) (*Summary, error) {
    active, total, err := s.fleetCounts(ctx)
    if err != nil {
        return nil, err
    }

    var acqCents, maintCents int64
    if err := s.db.QueryRow(ctx,
        `SELECT COALESCE(SUM(acquisition_cost_cents), 0) FROM vehicles`).Scan(&acqCents); err != nil {
        return nil, err
    }
    if err := s.db.QueryRow(ctx,
        `SELECT COALESCE(SUM(cost_cents), 0) FROM maintenance_logs`).Scan(&maintCents); err != nil {
        return nil, err
    }

    sum := &Summary{
        UtilizationRate:       utilization(active, total),
        TotalVehicles:         total,
        TotalAcquisitionCents: acqCents,
        TotalMaintenanceCents: maintCents,
    }
    if total > 0 {
        sum.FleetCostPerVehicleCents = (acqCents + maintCents) / int64(total)
    }
    return sum, nil
}

// Monthly rolls completed-trip revenue and maintenance spend into
// per-month rows, newest first. Revenue is estimated at a flat rate per
// completed trip; fuel is estimated as a percentage of revenue.
func (s *Store) Monthly(ctx context.Context, revenuePerTripCents int64, fuelPercent int) ([]MonthlyRow, error) {
    rows, err := s.db.Query(ctx, `
        SELECT month, COALESCE(SUM(revenue), 0), COALESCE(SUM(maintenance), 0)
        FROM (
            SELECT TO_CHAR(created_at, 'YYYY-MM') AS month, COUNT(*) * $1 AS revenue, 0 AS maintenance
            FROM trips
            WHERE status = 'Completed'
            GROUP BY month
            UNION ALL
            SELECT TO_CHAR(date, 'YYYY-MM') AS month, 0 AS revenue, SUM(cost_cents) AS maintenance
            FROM maintenance_logs
            GROUP BY month
        ) rollup
        GROUP BY month
        ORDER BY month DESC`,
        revenuePerTripCents,
    )
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []MonthlyRow
    for rows.Next() {
        var r MonthlyRow
        if err := rows.Scan(&r.Month, &r.RevenueCents, &r.MaintenanceCostCents); err != nil {
            return nil, err
        }
        r.EstimatedFuelCents = r.RevenueCents * int64(fuelPercent) / 100
        r.NetProfitCents = r.RevenueCents - r.MaintenanceCostCents - r.EstimatedFuelCents
        out = append(out, r)
    }
    return out, rows.Err()
}

func (s *Store) DashboardStats(ctx context.Context) (*DashboardStats, error) {
    active, total, err := s.fleetCounts(ctx)
    if err != nil {
        return nil, err
    }

    stats := &DashboardStats{
        ActiveFleet:     active,
        UtilizationRate: utilization(active, total),
    }
    if err := s.db.QueryRow(ctx,
        `SELECT COUNT(*) FROM maintenance_logs WHERE status = 'Open'`).Scan(&stats.MaintenanceAlerts); err != nil {
        return nil, err
    }
    if err := s.db.QueryRow(ctx,
        `SELECT COALESCE(SUM(cargo_weight_kg), 0) FROM trips WHERE status = 'Draft'`).Scan(&stats.PendingCargoKg); err != nil {
        return nil, err
    }
    return stats, nil
}

func utilization(active, total int) int {
    if total == 0 {
        return 0
    }
    return int((float64(active)*100/float64(total)) + 0.5)
}

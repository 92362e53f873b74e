// README: Trip store backed by PostgreSQL; transitions run in one transaction.
package trip

import (
    "context"
    "errors"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
    db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
    return &Store{db: db}
}

const tripColumns = `id, vehicle_id, driver_id, cargo_weight_kg, origin, destination, status,
       start_odometer, final_odometer, fuel_liters, fuel_efficiency_kml, created_at`

func (s *Store) Create(ctx context.Context, t *Trip) error {
    row := s.db.QueryRow(ctx, `
        INSERT INTO trips (vehicle_id, driver_id, cargo_weight_kg, origin, destination, status)
        VALUES ($1, $2, $3, $4, $5, 'Draft')
        RETURNING id, status, created_at`,
        t.VehicleID, t.DriverID, t.CargoWeightKg, t.Origin, t.Destination,
    )
    return row.Scan(&t.ID, &t.Status, &t.CreatedAt)
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Trip, error) {
    return scanTrip(s.db.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id))
}

func (s *Store) List(ctx context.Context, status Status) ([]Trip, error) {
    query := `SELECT ` + tripColumns + ` FROM trips`
    var args []any
    if status != "" {
        query += ` WHERE status = $1`
        args = append(args, string(status))
    }
    query += ` ORDER BY created_at DESC`

    rows, err := s.db.Query(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []Trip
    for rows.Next() {
        t, err := scanTrip(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *t)
    }
    return out, rows.Err()
}

// Transition applies one edge of the status graph together with its
// vehicle and driver cascade, all inside a single transaction. The trip
// row is locked first, so racing calls on the same trip serialize and
// the loser observes the moved status.
func (s *Store) Transition(ctx context.Context, id int64, to Status, finalOdometer *int) (*Trip, error) {
    tx, err := s.db.Begin(ctx)
    if err != nil {
        return nil, err
    }
    defer tx.Rollback(ctx)

    t, err := scanTrip(tx.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1 FOR UPDATE`, id))
    if err != nil {
        return nil, err
    }
    if !CanTransition(t.Status, to) {
        return nil, &InvalidTransitionError{From: t.Status, To: to}
    }

    switch to {
    case StatusDispatched:
        // Capture the vehicle's odometer at dispatch so fuel efficiency
        // can be derived against the final reading.
        var startOdo int
        err = tx.QueryRow(ctx,
            `UPDATE vehicles SET status = 'On Trip' WHERE id = $1 RETURNING odometer`,
            t.VehicleID,
        ).Scan(&startOdo)
        if err != nil {
            return nil, err
        }
        if _, err = tx.Exec(ctx,
            `UPDATE drivers SET duty_status = 'On Trip' WHERE id = $1`, t.DriverID); err != nil {
            return nil, err
        }
        if _, err = tx.Exec(ctx,
            `UPDATE trips SET status = $1, start_odometer = $2 WHERE id = $3`,
            string(to), startOdo, id); err != nil {
            return nil, err
        }

    case StatusCompleted:
        if _, err = tx.Exec(ctx, `
            UPDATE vehicles
            SET status = 'Available',
                odometer = GREATEST(odometer, COALESCE($2, odometer))
            WHERE id = $1`,
            t.VehicleID, finalOdometer); err != nil {
            return nil, err
        }
        if _, err = tx.Exec(ctx, `
            UPDATE drivers
            SET trips_completed = trips_completed + 1,
                trips_total = trips_total + 1
            WHERE id = $1`, t.DriverID); err != nil {
            return nil, err
        }
        efficiency := fuelEfficiency(t, finalOdometer)
        if _, err = tx.Exec(ctx, `
            UPDATE trips
            SET status = $1,
                final_odometer = COALESCE($2, final_odometer),
                fuel_efficiency_kml = COALESCE($3, fuel_efficiency_kml)
            WHERE id = $4`,
            string(to), finalOdometer, efficiency, id); err != nil {
            return nil, err
        }

    case StatusCancelled:
        if _, err = tx.Exec(ctx,
            `UPDATE vehicles SET status = 'Available' WHERE id = $1`, t.VehicleID); err != nil {
            return nil, err
        }
        if _, err = tx.Exec(ctx,
            `UPDATE drivers SET trips_total = trips_total + 1 WHERE id = $1`, t.DriverID); err != nil {
            return nil, err
        }
        if _, err = tx.Exec(ctx,
            `UPDATE trips SET status = $1 WHERE id = $2`, string(to), id); err != nil {
            return nil, err
        }
    }

    if to == StatusCompleted || to == StatusCancelled {
        if _, err = tx.Exec(ctx, `
            UPDATE drivers
            SET safety_score = CASE WHEN trips_total > 0
                                    THEN ROUND(trips_completed * 100.0 / trips_total)
                                    ELSE 100 END
            WHERE id = $1`, t.DriverID); err != nil {
            return nil, err
        }
    }

    updated, err := scanTrip(tx.QueryRow(ctx, `SELECT `+tripColumns+` FROM trips WHERE id = $1`, id))
    if err != nil {
        return nil, err
    }
    if err := tx.Commit(ctx); err != nil {
        return nil, err
    }
    return updated, nil
}

func fuelEfficiency(t *Trip, finalOdometer *int) *float64 {
    if finalOdometer == nil || t.StartOdometer == nil || t.FuelLiters <= 0 {
        return nil
    }
    distance := *finalOdometer - *t.StartOdometer
    if distance <= 0 {
        return nil
    }
    eff := float64(distance) / t.FuelLiters
    return &eff
}

func scanTrip(row pgx.Row) (*Trip, error) {
    var t Trip
    err := row.Scan(
        &t.ID, &t.VehicleID, &t.DriverID, &t.CargoWeightKg, &t.Origin, &t.Destination, &t.Status,
        &t.StartOdometer, &t.FinalOdometer, &t.FuelLiters, &t.FuelEfficiencyKmL, &t.CreatedAt,
    )
    if errors.Is(err, pgx.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &t, nil
}

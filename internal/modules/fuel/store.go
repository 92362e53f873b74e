// README: Fuel store; a write also refreshes the trip's efficiency and the vehicle odometer.
package fuel

import (
    "context"
    "errors"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgxpool"

    "fleetops/internal/types"
)

type Store struct {
    db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
    return &Store{db: db}
}

// Record inserts the fuel log, accumulates liters on the parent trip
// (recomputing its efficiency figure when the trip already has both
// odometer endpoints), and advances the vehicle odometer if the new
// reading is higher. One transaction covers all three writes.
func (s *Store) Record(ctx context.Context, l *Log) error {
    tx, err := s.db.Begin(ctx)
    if err != nil {
        return err
    }
    defer tx.Rollback(ctx)

    var vehicleID int64
    err = tx.QueryRow(ctx,
        `SELECT vehicle_id FROM trips WHERE id = $1 FOR UPDATE`, l.TripID,
    ).Scan(&vehicleID)
    if errors.Is(err, pgx.ErrNoRows) {
        return ErrTripNotFound
    }
    if err != nil {
        return err
    }

    row := tx.QueryRow(ctx, `
        INSERT INTO fuel_logs (trip_id, liters, cost_cents, odometer_reading, date)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`,
        l.TripID, l.Liters, l.Cost.Amount, l.OdometerReading, l.Date,
    )
    if err := row.Scan(&l.ID, &l.CreatedAt); err != nil {
        return err
    }

    if _, err := tx.Exec(ctx, `
        UPDATE trips
        SET fuel_liters = fuel_liters + $1,
            fuel_efficiency_kml = CASE
                WHEN final_odometer IS NOT NULL
                 AND start_odometer IS NOT NULL
                 AND final_odometer > start_odometer
                 AND fuel_liters + $1 > 0
                THEN (final_odometer - start_odometer) / (fuel_liters + $1)
                ELSE fuel_efficiency_kml
            END
        WHERE id = $2`,
        l.Liters, l.TripID); err != nil {
        return err
    }

    if _, err := tx.Exec(ctx, `
        UPDATE vehicles SET odometer = GREATEST(odometer, $1) WHERE id = $2`,
        l.OdometerReading, vehicleID); err != nil {
        return err
    }
    return tx.Commit(ctx)
}

func (s *Store) List(ctx context.Context, tripID int64) ([]Log, error) {
    query := `
        SELECT id, trip_id, liters, cost_cents, odometer_reading, date, created_at
        FROM fuel_logs`
    var args []any
    if tripID != 0 {
        query += ` WHERE trip_id = $1`
        args = append(args, tripID)
    }
    query += ` ORDER BY date DESC`

    rows, err := s.db.Query(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []Log
    for rows.Next() {
        var l Log
        var cents int64
        if err := rows.Scan(&l.ID, &l.TripID, &l.Liters, &cents, &l.OdometerReading, &l.Date, &l.CreatedAt); err != nil {
            return nil, err
        }
        l.Cost = types.USD(cents)
        out = append(out, l)
    }
    return out, rows.Err()
}

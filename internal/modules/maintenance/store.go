// README: Maintenance store; open/close flip the vehicle status in one transaction.
package maintenance

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

// Open inserts an Open log and forces the vehicle In Shop atomically.
func (s *Store) Open(ctx context.Context, l *Log) error {
    tx, err := s.db.Begin(ctx)
    if err != nil {
        return err
    }
    defer tx.Rollback(ctx)

    tag, err := tx.Exec(ctx,
        `UPDATE vehicles SET status = 'In Shop' WHERE id = $1`, l.VehicleID)
    if err != nil {
        return err
    }
    if tag.RowsAffected() == 0 {
        return ErrVehicleNotFound
    }

    row := tx.QueryRow(ctx, `
        INSERT INTO maintenance_logs (vehicle_id, service_type, cost_cents, date, notes, status)
        VALUES ($1, $2, $3, $4, $5, 'Open')
        RETURNING id, status, created_at`,
        l.VehicleID, l.ServiceType, l.Cost.Amount, l.Date, l.Notes,
    )
    if err := row.Scan(&l.ID, &l.Status, &l.CreatedAt); err != nil {
        return err
    }
    return tx.Commit(ctx)
}

// Close marks the log Closed and restores its vehicle to Available,
// unconditionally, in one transaction. It does not look at other open
// logs or active trips on the same vehicle.
func (s *Store) Close(ctx context.Context, logID int64) (*Log, error) {
    tx, err := s.db.Begin(ctx)
    if err != nil {
        return nil, err
    }
    defer tx.Rollback(ctx)

    row := tx.QueryRow(ctx, `
        UPDATE maintenance_logs SET status = 'Closed'
        WHERE id = $1
        RETURNING id, vehicle_id, service_type, cost_cents, date, notes, status, created_at`,
        logID,
    )
    l, err := scanLog(row)
    if err != nil {
        return nil, err
    }

    if _, err := tx.Exec(ctx,
        `UPDATE vehicles SET status = 'Available' WHERE id = $1`, l.VehicleID); err != nil {
        return nil, err
    }
    if err := tx.Commit(ctx); err != nil {
        return nil, err
    }
    return l, nil
}

func (s *Store) List(ctx context.Context, vehicleID int64) ([]Log, error) {
    query := `
        SELECT m.id, m.vehicle_id, m.service_type, m.cost_cents, m.date, m.notes, m.status,
               m.created_at, v.name
        FROM maintenance_logs m
        JOIN vehicles v ON m.vehicle_id = v.id`
    var args []any
    if vehicleID != 0 {
        query += ` WHERE m.vehicle_id = $1`
        args = append(args, vehicleID)
    }
    query += ` ORDER BY m.date DESC`

    rows, err := s.db.Query(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []Log
    for rows.Next() {
        var l Log
        var cents int64
        if err := rows.Scan(&l.ID, &l.VehicleID, &l.ServiceType, &cents, &l.Date, &l.Notes,
            &l.Status, &l.CreatedAt, &l.VehicleName); err != nil {
            return nil, err
        }
        l.Cost = types.USD(cents)
        out = append(out, l)
    }
    return out, rows.Err()
}

func scanLog(row pgx.Row) (*Log, error) {
    var l Log
    var cents int64
    err := row.Scan(&l.ID, &l.VehicleID, &l.ServiceType, &cents, &l.Date, &l.Notes, &l.Status, &l.CreatedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    l.Cost = types.USD(cents)
    return &l, nil
}

// README: Vehicle store backed by PostgreSQL.
package vehicle

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgconn"
    "github.com/jackc/pgx/v5/pgxpool"

    "fleetops/internal/types"
)

type Store struct {
    db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
    return &Store{db: db}
}

const vehicleColumns = `id, name, license_plate, category, max_capacity_kg, odometer,
       acquisition_cost_cents, region, status, created_at`

func (s *Store) Create(ctx context.Context, v *Vehicle) error {
    // Status and odometer are forced server-side; registration input is ignored.
    row := s.db.QueryRow(ctx, `
        INSERT INTO vehicles (name, license_plate, category, max_capacity_kg, odometer,
                              acquisition_cost_cents, region, status)
        VALUES ($1, $2, $3, $4, 0, $5, $6, 'Available')
        RETURNING id, odometer, status, created_at`,
        v.Name, v.LicensePlate, string(v.Category), v.MaxCapacityKg,
        v.AcquisitionCost.Amount, v.Region,
    )
    if err := row.Scan(&v.ID, &v.Odometer, &v.Status, &v.CreatedAt); err != nil {
        if isUniqueViolation(err) {
            return ErrConflict
        }
        return err
    }
    v.AcquisitionCost.Currency = types.DefaultCurrency
    return nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Vehicle, error) {
    row := s.db.QueryRow(ctx, `
        SELECT `+vehicleColumns+`,
               COALESCE((SELECT SUM(cost_cents) FROM maintenance_logs WHERE vehicle_id = v.id), 0)
        FROM vehicles v
        WHERE id = $1`, id,
    )
    var v Vehicle
    var maintCents int64
    if err := scanVehicle(row, &v, &maintCents); err != nil {
        if errors.Is(err, pgx.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    m := types.USD(maintCents)
    v.TotalMaintenanceCost = &m
    return &v, nil
}

func (s *Store) List(ctx context.Context, f ListFilter) ([]Vehicle, error) {
    var conds []string
    var args []any
    if f.Status != "" {
        args = append(args, string(f.Status))
        conds = append(conds, fmt.Sprintf("status = $%d", len(args)))
    }
    if f.Category != "" {
        args = append(args, string(f.Category))
        conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
    }
    if f.Region != "" {
        args = append(args, f.Region)
        conds = append(conds, fmt.Sprintf("region = $%d", len(args)))
    }
    query := `SELECT ` + vehicleColumns + ` FROM vehicles`
    if len(conds) > 0 {
        query += " WHERE " + strings.Join(conds, " AND ")
    }
    query += " ORDER BY id ASC"

    rows, err := s.db.Query(ctx, query, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []Vehicle
    for rows.Next() {
        var v Vehicle
        if err := scanVehicle(rows, &v, nil); err != nil {
            return nil, err
        }
        out = append(out, v)
    }
    return out, rows.Err()
}

// updatableColumns whitelists fields the administrative partial-update
// path may touch. Status transitions driven by trips and maintenance
// never go through here.
var updatableColumns = map[string]bool{
    "name":                   true,
    "region":                 true,
    "max_capacity_kg":        true,
    "acquisition_cost_cents": true,
    "status":                 true,
}

func (s *Store) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Vehicle, error) {
    sets := make([]string, 0, len(fields))
    args := make([]any, 0, len(fields)+1)
    for col, val := range fields {
        if !updatableColumns[col] {
            return nil, fmt.Errorf("%w: field %q is not updatable", ErrValidation, col)
        }
        args = append(args, val)
        sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
    }
    if len(sets) == 0 {
        return nil, fmt.Errorf("%w: no fields to update", ErrValidation)
    }
    args = append(args, id)
    query := fmt.Sprintf("UPDATE vehicles SET %s WHERE id = $%d RETURNING %s",
        strings.Join(sets, ", "), len(args), vehicleColumns)

    row := s.db.QueryRow(ctx, query, args...)
    var v Vehicle
    if err := scanVehicle(row, &v, nil); err != nil {
        if errors.Is(err, pgx.ErrNoRows) {
            return nil, ErrNotFound
        }
        return nil, err
    }
    return &v, nil
}

func scanVehicle(row pgx.Row, v *Vehicle, maintCents *int64) error {
    var cents int64
    dest := []any{
        &v.ID, &v.Name, &v.LicensePlate, &v.Category, &v.MaxCapacityKg, &v.Odometer,
        &cents, &v.Region, &v.Status, &v.CreatedAt,
    }
    if maintCents != nil {
        dest = append(dest, maintCents)
    }
    if err := row.Scan(dest...); err != nil {
        return err
    }
    v.AcquisitionCost = types.USD(cents)
    return nil
}

func isUniqueViolation(err error) bool {
    var pgErr *pgconn.PgError
    return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

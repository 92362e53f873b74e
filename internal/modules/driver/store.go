// README: Driver store backed by PostgreSQL.
package driver

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "github.com/jackc/pgx/v5"
    "github.com/jackc/pgx/v5/pgconn"
    "github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
    db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
    return &Store{db: db}
}

const driverColumns = `id, name, license_number, license_expiry, duty_status,
       safety_score, trips_completed, trips_total, created_at`

func (s *Store) Create(ctx context.Context, d *Driver) error {
    row := s.db.QueryRow(ctx, `
        INSERT INTO drivers (name, license_number, license_expiry, duty_status)
        VALUES ($1, $2, $3, $4)
        RETURNING id, safety_score, trips_completed, trips_total, created_at`,
        d.Name, d.LicenseNumber, d.LicenseExpiry, string(d.DutyStatus),
    )
    if err := row.Scan(&d.ID, &d.SafetyScore, &d.TripsCompleted, &d.TripsTotal, &d.CreatedAt); err != nil {
        if isUniqueViolation(err) {
            return ErrConflict
        }
        return err
    }
    return nil
}

func (s *Store) GetByID(ctx context.Context, id int64) (*Driver, error) {
    row := s.db.QueryRow(ctx, `SELECT `+driverColumns+` FROM drivers WHERE id = $1`, id)
    return scanDriver(row)
}

func (s *Store) List(ctx context.Context) ([]Driver, error) {
    return s.list(ctx, `SELECT `+driverColumns+` FROM drivers ORDER BY id ASC`)
}

// ListExpiringSoon returns drivers whose license expires within the
// given number of days, soonest first.
func (s *Store) ListExpiringSoon(ctx context.Context, days int) ([]Driver, error) {
    return s.list(ctx, fmt.Sprintf(`
        SELECT `+driverColumns+`
        FROM drivers
        WHERE license_expiry <= CURRENT_DATE + INTERVAL '%d days'
        ORDER BY license_expiry ASC`, days))
}

func (s *Store) list(ctx context.Context, query string) ([]Driver, error) {
    rows, err := s.db.Query(ctx, query)
    if err != nil {
        return nil, err
    }
    defer rows.Close()

    var out []Driver
    for rows.Next() {
        d, err := scanDriver(rows)
        if err != nil {
            return nil, err
        }
        out = append(out, *d)
    }
    return out, rows.Err()
}

var updatableColumns = map[string]bool{
    "name":           true,
    "license_expiry": true,
    "duty_status":    true,
}

func (s *Store) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Driver, error) {
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
    query := fmt.Sprintf("UPDATE drivers SET %s WHERE id = $%d RETURNING %s",
        strings.Join(sets, ", "), len(args), driverColumns)

    return scanDriver(s.db.QueryRow(ctx, query, args...))
}

func scanDriver(row pgx.Row) (*Driver, error) {
    var d Driver
    err := row.Scan(
        &d.ID, &d.Name, &d.LicenseNumber, &d.LicenseExpiry, &d.DutyStatus,
        &d.SafetyScore, &d.TripsCompleted, &d.TripsTotal, &d.CreatedAt,
    )
    if errors.Is(err, pgx.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &d, nil
}

func isUniqueViolation(err error) bool {
    var pgErr *pgconn.PgError
    return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// README: Shared helper for DB-backed tests; skips when FLEETOPS_TEST_DSN is unset.
package testdb

import (
    "context"
    "os"
    "path/filepath"
    "strings"
    "testing"

    "github.com/jackc/pgx/v5/pgxpool"
)

// New connects to the test database, applies the schema, and truncates
// every table so each test starts clean.
func New(t *testing.T) *pgxpool.Pool {
    t.Helper()

    dsn := os.Getenv("FLEETOPS_TEST_DSN")
    if dsn == "" {
        t.Skip("FLEETOPS_TEST_DSN not set; skipping DB-backed tests")
    }

    ctx := context.Background()
    db, err := pgxpool.New(ctx, dsn)
    if err != nil {
        t.Fatalf("connect db: %v", err)
    }
    t.Cleanup(func() { db.Close() })

    if err := applyMigration(ctx, db); err != nil {
        t.Fatalf("apply migration: %v", err)
    }

    _, err = db.Exec(ctx,
        "TRUNCATE TABLE fuel_logs, maintenance_logs, trips, drivers, vehicles, users RESTART IDENTITY CASCADE")
    if err != nil {
        t.Fatalf("truncate tables: %v", err)
    }
    return db
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
    root, err := repoRoot()
    if err != nil {
        return err
    }
    content, err := os.ReadFile(filepath.Join(root, "migrations", "0001_init.sql"))
    if err != nil {
        return err
    }
    for _, stmt := range splitSQL(stripSQLComments(string(content))) {
        if _, err := db.Exec(ctx, stmt); err != nil {
            return err
        }
    }
    return nil
}

func repoRoot() (string, error) {
    dir, err := os.Getwd()
    if err != nil {
        return "", err
    }
    for i := 0; i < 6; i++ {
        if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
            return dir, nil
        }
        parent := filepath.Dir(dir)
        if parent == dir {
            break
        }
        dir = parent
    }
    return dir, nil
}

func stripSQLComments(sql string) string {
    var out []string
    for _, line := range strings.Split(sql, "\n") {
        if idx := strings.Index(line, "--"); idx >= 0 {
            line = line[:idx]
        }
        out = append(out, line)
    }
    return strings.Join(out, "\n")
}

func splitSQL(sql string) []string {
    var out []string
    for _, stmt := range strings.Split(sql, ";") {
        stmt = strings.TrimSpace(stmt)
        if stmt != "" {
            out = append(out, stmt)
        }
    }
    return out
}

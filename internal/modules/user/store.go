// README: User store backed by PostgreSQL.
package user

import (
    "context"
    "errors"

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

func (s *Store) Create(ctx context.Context, u *User) error {
    row := s.db.QueryRow(ctx, `
        INSERT INTO users (name, email, password_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at`,
        u.Name, u.Email, u.PasswordHash, string(u.Role),
    )
    if err := row.Scan(&u.ID, &u.CreatedAt); err != nil {
        var pgErr *pgconn.PgError
        if errors.As(err, &pgErr) && pgErr.Code == "23505" {
            return ErrEmailTaken
        }
        return err
    }
    return nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (*User, error) {
    row := s.db.QueryRow(ctx, `
        SELECT id, name, email, password_hash, role, created_at
        FROM users
        WHERE email = $1`, email,
    )
    var u User
    err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt)
    if errors.Is(err, pgx.ErrNoRows) {
        return nil, ErrNotFound
    }
    if err != nil {
        return nil, err
    }
    return &u, nil
}

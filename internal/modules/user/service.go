// README: User service; registration and credential checks with bcrypt.
package user

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "golang.org/x/crypto/bcrypt"
)

var (
    ErrNotFound           = errors.New("user not found")
    ErrEmailTaken         = errors.New("email already registered")
    ErrInvalidCredentials = errors.New("invalid email or password")
    ErrValidation         = errors.New("invalid user input")
)

type Service struct {
    store *Store
}

func NewService(store *Store) *Service {
    return &Service{store: store}
}

type RegisterCommand struct {
    Name     string
    Email    string
    Password string
    Role     Role
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*User, error) {
    cmd.Name = strings.TrimSpace(cmd.Name)
    cmd.Email = strings.ToLower(strings.TrimSpace(cmd.Email))
    if len(cmd.Name) < 2 {
        return nil, fmt.Errorf("%w: name too short", ErrValidation)
    }
    if cmd.Email == "" {
        return nil, fmt.Errorf("%w: email required", ErrValidation)
    }
    if len(cmd.Password) < 6 {
        return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
    }
    if !ValidRole(cmd.Role) {
        return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, cmd.Role)
    }

    hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
    if err != nil {
        return nil, err
    }
    u := &User{
        Name:         cmd.Name,
        Email:        cmd.Email,
        PasswordHash: string(hash),
        Role:         cmd.Role,
    }
    if err := s.store.Create(ctx, u); err != nil {
        return nil, err
    }
    return u, nil
}

func (s *Service) Authenticate(ctx context.Context, email, password string) (*User, error) {
    email = strings.ToLower(strings.TrimSpace(email))
    u, err := s.store.GetByEmail(ctx, email)
    if err != nil {
        if errors.Is(err, ErrNotFound) {
            return nil, ErrInvalidCredentials
        }
        return nil, err
    }
    if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
        return nil, ErrInvalidCredentials
    }
    return u, nil
}

// README: Driver registry service (registration, listing, duty edits).
package driver

import (
    "context"
    "errors"
    "fmt"
    "strings"
    "time"
)

var (
    ErrNotFound   = errors.New("driver not found")
    ErrConflict   = errors.New("license number already registered")
    ErrValidation = errors.New("invalid driver input")
)

// licenseWarningDays is the look-ahead window for the expiring-soon report.
const licenseWarningDays = 30

type Service struct {
    store *Store
}

func NewService(store *Store) *Service {
    return &Service{store: store}
}

type RegisterCommand struct {
    Name          string
    LicenseNumber string
    LicenseExpiry time.Time
    DutyStatus    DutyStatus // optional; defaults to Off Duty
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*Driver, error) {
    cmd.Name = strings.TrimSpace(cmd.Name)
    cmd.LicenseNumber = strings.TrimSpace(cmd.LicenseNumber)
    if cmd.Name == "" {
        return nil, fmt.Errorf("%w: name required", ErrValidation)
    }
    if cmd.LicenseNumber == "" {
        return nil, fmt.Errorf("%w: license_number required", ErrValidation)
    }
    if cmd.LicenseExpiry.IsZero() {
        return nil, fmt.Errorf("%w: license_expiry required", ErrValidation)
    }
    if cmd.DutyStatus == "" {
        cmd.DutyStatus = DutyOffDuty
    }
    if !ValidDutyStatus(cmd.DutyStatus) {
        return nil, fmt.Errorf("%w: unknown duty status %q", ErrValidation, cmd.DutyStatus)
    }

    d := &Driver{
        Name:          cmd.Name,
        LicenseNumber: cmd.LicenseNumber,
        LicenseExpiry: cmd.LicenseExpiry,
        DutyStatus:    cmd.DutyStatus,
    }
    if err := s.store.Create(ctx, d); err != nil {
        return nil, err
    }
    return d, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Driver, error) {
    return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]Driver, error) {
    return s.store.List(ctx)
}

func (s *Service) ListExpiringSoon(ctx context.Context) ([]Driver, error) {
    return s.store.ListExpiringSoon(ctx, licenseWarningDays)
}

// UpdateFields applies administrative edits. Trip transitions own the
// On Trip duty flips; this path is for suspensions and roster edits.
func (s *Service) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Driver, error) {
    if raw, ok := fields["duty_status"]; ok {
        requested, _ := raw.(string)
        if !ValidDutyStatus(DutyStatus(requested)) {
            return nil, fmt.Errorf("%w: unknown duty status %q", ErrValidation, requested)
        }
        if DutyStatus(requested) == DutyOnTrip {
            return nil, fmt.Errorf("%w: On Trip is set by dispatching, not by edit", ErrValidation)
        }
    }
    return s.store.UpdateFields(ctx, id, fields)
}

// README: Vehicle registry service (registration, listing, administrative edits).
package vehicle

import (
    "context"
    "errors"
    "fmt"
    "strings"

    "fleetops/internal/types"
)

var (
    ErrNotFound   = errors.New("vehicle not found")
    ErrConflict   = errors.New("license plate already registered")
    ErrValidation = errors.New("invalid vehicle input")
)

type Service struct {
    store *Store
}

func NewService(store *Store) *Service {
    return &Service{store: store}
}

type RegisterCommand struct {
    Name                 string
    LicensePlate         string
    Category             Category
    MaxCapacityKg        int
    AcquisitionCostCents int64
    Region               string
}

func (s *Service) Register(ctx context.Context, cmd RegisterCommand) (*Vehicle, error) {
    cmd.Name = strings.TrimSpace(cmd.Name)
    cmd.LicensePlate = strings.TrimSpace(cmd.LicensePlate)
    if cmd.Name == "" {
        return nil, fmt.Errorf("%w: name required", ErrValidation)
    }
    if cmd.LicensePlate == "" {
        return nil, fmt.Errorf("%w: license_plate required", ErrValidation)
    }
    if !ValidCategory(cmd.Category) {
        return nil, fmt.Errorf("%w: category must be Truck, Van, or Bike", ErrValidation)
    }
    if cmd.MaxCapacityKg <= 0 {
        return nil, fmt.Errorf("%w: max_capacity_kg must be positive", ErrValidation)
    }
    if cmd.AcquisitionCostCents < 0 {
        return nil, fmt.Errorf("%w: acquisition_cost must not be negative", ErrValidation)
    }
    if cmd.Region == "" {
        cmd.Region = "North America"
    }

    v := &Vehicle{
        Name:            cmd.Name,
        LicensePlate:    cmd.LicensePlate,
        Category:        cmd.Category,
        MaxCapacityKg:   cmd.MaxCapacityKg,
        AcquisitionCost: types.USD(cmd.AcquisitionCostCents),
        Region:          cmd.Region,
    }
    if err := s.store.Create(ctx, v); err != nil {
        return nil, err
    }
    return v, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Vehicle, error) {
    return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, f ListFilter) ([]Vehicle, error) {
    if f.Status != "" && !validStatus(f.Status) {
        return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, f.Status)
    }
    if f.Category != "" && !ValidCategory(f.Category) {
        return nil, fmt.Errorf("%w: unknown category %q", ErrValidation, f.Category)
    }
    return s.store.List(ctx, f)
}

// UpdateFields applies administrative partial edits. The only status
// change allowed through this path is the manual Retire/Restore flip;
// trip and maintenance transitions own every other status move.
func (s *Service) UpdateFields(ctx context.Context, id int64, fields map[string]any) (*Vehicle, error) {
    if raw, ok := fields["status"]; ok {
        requested, _ := raw.(string)
        if Status(requested) != StatusRetired && Status(requested) != StatusAvailable {
            return nil, fmt.Errorf("%w: status may only be set to Retired or Available here", ErrValidation)
        }
        current, err := s.store.GetByID(ctx, id)
        if err != nil {
            return nil, err
        }
        switch {
        case current.Status == StatusAvailable && Status(requested) == StatusRetired:
        case current.Status == StatusRetired && Status(requested) == StatusAvailable:
        default:
            return nil, fmt.Errorf("%w: cannot set status %s from %s", ErrValidation, requested, current.Status)
        }
    }
    return s.store.UpdateFields(ctx, id, fields)
}

func validStatus(st Status) bool {
    switch st {
    case StatusAvailable, StatusOnTrip, StatusInShop, StatusRetired:
        return true
    }
    return false
}

// README: Trip service; admission checks at creation, state machine on transition.
package trip

import (
    "context"
    "errors"
    "fmt"
    "strings"
    "time"

    "fleetops/internal/modules/driver"
    "fleetops/internal/modules/vehicle"
)

var (
    ErrNotFound   = errors.New("trip not found")
    ErrValidation = errors.New("invalid trip input")
)

// InvalidTransitionError reports a requested status change that is not
// an edge of the trip state graph.
type InvalidTransitionError struct {
    From Status
    To   Status
}

func (e *InvalidTransitionError) Error() string {
    return fmt.Sprintf("invalid trip status transition: %s -> %s", e.From, e.To)
}

// VehicleDirectory and DriverDirectory are the narrow registry views the
// trip service needs for admission checks.
type VehicleDirectory interface {
    Get(ctx context.Context, id int64) (*vehicle.Vehicle, error)
}

type DriverDirectory interface {
    Get(ctx context.Context, id int64) (*driver.Driver, error)
}

type Service struct {
    store    *Store
    vehicles VehicleDirectory
    drivers  DriverDirectory
    now      func() time.Time
}

func NewService(store *Store, vehicles VehicleDirectory, drivers DriverDirectory) *Service {
    return &Service{store: store, vehicles: vehicles, drivers: drivers, now: time.Now}
}

type CreateCommand struct {
    VehicleID     int64
    DriverID      int64
    CargoWeightKg int
    Origin        string
    Destination   string
}

// Create runs the admission checks and inserts a Draft trip. A Draft
// does not reserve the vehicle or driver; reservation happens at
// dispatch, first dispatch wins.
func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Trip, error) {
    cmd.Origin = strings.TrimSpace(cmd.Origin)
    cmd.Destination = strings.TrimSpace(cmd.Destination)
    if cmd.CargoWeightKg <= 0 {
        return nil, fmt.Errorf("%w: cargo_weight_kg must be positive", ErrValidation)
    }
    if cmd.Origin == "" || cmd.Destination == "" {
        return nil, fmt.Errorf("%w: origin and destination required", ErrValidation)
    }

    v, err := s.vehicles.Get(ctx, cmd.VehicleID)
    if err != nil {
        if errors.Is(err, vehicle.ErrNotFound) {
            return nil, fmt.Errorf("vehicle %d: %w", cmd.VehicleID, err)
        }
        return nil, err
    }
    d, err := s.drivers.Get(ctx, cmd.DriverID)
    if err != nil {
        if errors.Is(err, driver.ErrNotFound) {
            return nil, fmt.Errorf("driver %d: %w", cmd.DriverID, err)
        }
        return nil, err
    }

    if err := CheckCapacity(v, cmd.CargoWeightKg); err != nil {
        return nil, err
    }
    if err := CheckLicenseValid(d, s.now()); err != nil {
        return nil, err
    }

    t := &Trip{
        VehicleID:     cmd.VehicleID,
        DriverID:      cmd.DriverID,
        CargoWeightKg: cmd.CargoWeightKg,
        Origin:        cmd.Origin,
        Destination:   cmd.Destination,
    }
    if err := s.store.Create(ctx, t); err != nil {
        return nil, err
    }
    return t, nil
}

type TransitionCommand struct {
    TripID        int64
    To            Status
    FinalOdometer *int // honored on Completed only
}

func (s *Service) TransitionStatus(ctx context.Context, cmd TransitionCommand) (*Trip, error) {
    if !ValidStatus(cmd.To) {
        return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, cmd.To)
    }
    if cmd.To != StatusCompleted {
        cmd.FinalOdometer = nil
    }
    if cmd.FinalOdometer != nil && *cmd.FinalOdometer < 0 {
        return nil, fmt.Errorf("%w: final_odometer must not be negative", ErrValidation)
    }
    // The store re-reads the current status under a row lock, so the
    // transition table is consulted against live state, not a stale read.
    return s.store.Transition(ctx, cmd.TripID, cmd.To, cmd.FinalOdometer)
}

func (s *Service) Get(ctx context.Context, id int64) (*Trip, error) {
    return s.store.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, status Status) ([]Trip, error) {
    if status != "" && !ValidStatus(status) {
        return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
    }
    return s.store.List(ctx, status)
}

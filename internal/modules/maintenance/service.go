// README: Maintenance service; validates input and delegates the atomic flips.
package maintenance

import (
    "context"
    "errors"
    "fmt"
    "strings"
    "time"

    "fleetops/internal/types"
)

var (
    ErrNotFound        = errors.New("maintenance log not found")
    ErrVehicleNotFound = errors.New("vehicle not found")
    ErrValidation      = errors.New("invalid maintenance input")
)

type Service struct {
    store *Store
}

func NewService(store *Store) *Service {
    return &Service{store: store}
}

type OpenCommand struct {
    VehicleID   int64
    ServiceType string
    CostCents   int64
    Date        time.Time
    Notes       string
}

func (s *Service) Open(ctx context.Context, cmd OpenCommand) (*Log, error) {
    cmd.ServiceType = strings.TrimSpace(cmd.ServiceType)
    if cmd.ServiceType == "" {
        return nil, fmt.Errorf("%w: service_type required", ErrValidation)
    }
    if cmd.CostCents < 0 {
        return nil, fmt.Errorf("%w: cost must not be negative", ErrValidation)
    }
    if cmd.Date.IsZero() {
        return nil, fmt.Errorf("%w: date required", ErrValidation)
    }

    l := &Log{
        VehicleID:   cmd.VehicleID,
        ServiceType: cmd.ServiceType,
        Cost:        types.USD(cmd.CostCents),
        Date:        cmd.Date,
        Notes:       cmd.Notes,
    }
    if err := s.store.Open(ctx, l); err != nil {
        return nil, err
    }
    return l, nil
}

func (s *Service) Close(ctx context.Context, logID int64) (*Log, error) {
    return s.store.Close(ctx, logID)
}

func (s *Service) List(ctx context.Context, vehicleID int64) ([]Log, error) {
    return s.store.List(ctx, vehicleID)
}

// README: Fuel service.
package fuel

import (
    "context"
    "errors"
    "fmt"
    "time"

    "fleetops/internal/types"
)

var (
    ErrTripNotFound = errors.New("trip not found")
    ErrValidation   = errors.New("invalid fuel input")
)

type Service struct {
    store *Store
}

func NewService(store *Store) *Service {
    return &Service{store: store}
}

type RecordCommand struct {
    TripID          int64
    Liters          float64
    CostCents       int64
    OdometerReading int
    Date            time.Time
}

func (s *Service) Record(ctx context.Context, cmd RecordCommand) (*Log, error) {
    if cmd.Liters <= 0 {
        return nil, fmt.Errorf("%w: liters must be positive", ErrValidation)
    }
    if cmd.CostCents < 0 {
        return nil, fmt.Errorf("%w: cost must not be negative", ErrValidation)
    }
    if cmd.OdometerReading < 0 {
        return nil, fmt.Errorf("%w: odometer_reading must not be negative", ErrValidation)
    }
    if cmd.Date.IsZero() {
        return nil, fmt.Errorf("%w: date required", ErrValidation)
    }

    l := &Log{
        TripID:          cmd.TripID,
        Liters:          cmd.Liters,
        Cost:            types.USD(cmd.CostCents),
        OdometerReading: cmd.OdometerReading,
        Date:            cmd.Date,
    }
    if err := s.store.Record(ctx, l); err != nil {
        return nil, err
    }
    return l, nil
}

func (s *Service) List(ctx context.Context, tripID int64) ([]Log, error) {
    return s.store.List(ctx, tripID)
}

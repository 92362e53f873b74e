// README: Trip aggregate and status transition table.
package trip

import "time"

type Status string

const (
    StatusDraft      Status = "Draft"
    StatusDispatched Status = "Dispatched"
    StatusCompleted  Status = "Completed"
    StatusCancelled  Status = "Cancelled"
)

func ValidStatus(st Status) bool {
    switch st {
    case StatusDraft, StatusDispatched, StatusCompleted, StatusCancelled:
        return true
    }
    return false
}

// AllowedTransitions represents the trip state flow (diagram) as code.
// Completed and Cancelled are terminal.
var AllowedTransitions = map[Status][]Status{
    StatusDraft:      {StatusDispatched, StatusCancelled},
    StatusDispatched: {StatusCompleted, StatusCancelled},
    StatusCompleted:  {},
    StatusCancelled:  {},
}

func CanTransition(from, to Status) bool {
    next, ok := AllowedTransitions[from]
    if !ok {
        return false
    }
    for _, s := range next {
        if s == to {
            return true
        }
    }
    return false
}

type Trip struct {
    ID            int64
    VehicleID     int64
    DriverID      int64
    CargoWeightKg int
    Origin        string
    Destination   string
    Status        Status
    CreatedAt     time.Time

    // StartOdometer is captured from the vehicle at dispatch;
    // FinalOdometer is reported at completion. Both feed the derived
    // fuel-efficiency figure once fuel has been logged.
    StartOdometer     *int
    FinalOdometer     *int
    FuelLiters        float64
    FuelEfficiencyKmL *float64
}

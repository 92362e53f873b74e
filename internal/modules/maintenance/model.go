// README: Maintenance log entity; an Open log keeps its vehicle In Shop.
package maintenance

import (
    "time"

    "fleetops/internal/types"
)

type Status string

const (
    StatusOpen   Status = "Open"
    StatusClosed Status = "Closed"
)

type Log struct {
    ID          int64
    VehicleID   int64
    ServiceType string
    Cost        types.Money
    Date        time.Time
    Notes       string
    Status      Status
    CreatedAt   time.Time

    // VehicleName is populated on list reads (join, not stored).
    VehicleName string
}

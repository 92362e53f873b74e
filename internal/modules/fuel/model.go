// README: Fuel log entity; auxiliary side-effect writer, no invariants of its own.
package fuel

import (
    "time"

    "fleetops/internal/types"
)

type Log struct {
    ID              int64
    TripID          int64
    Liters          float64
    Cost            types.Money
    OdometerReading int
    Date            time.Time
    CreatedAt       time.Time
}

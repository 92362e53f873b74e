// README: Driver aggregate and duty status definitions.
package driver

import "time"

type DutyStatus string

const (
    DutyOnDuty    DutyStatus = "On Duty"
    DutyOffDuty   DutyStatus = "Off Duty"
    DutySuspended DutyStatus = "Suspended"
    DutyOnTrip    DutyStatus = "On Trip"
)

func ValidDutyStatus(d DutyStatus) bool {
    switch d {
    case DutyOnDuty, DutyOffDuty, DutySuspended, DutyOnTrip:
        return true
    }
    return false
}

type Driver struct {
    ID             int64
    Name           string
    LicenseNumber  string
    LicenseExpiry  time.Time
    DutyStatus     DutyStatus
    SafetyScore    int
    TripsCompleted int
    TripsTotal     int
    CreatedAt      time.Time
}

// SafetyScore derives the completion-rate metric: 100 for fresh drivers,
// otherwise the completed/total ratio rounded to the nearest integer.
func SafetyScore(completed, total int) int {
    if total <= 0 {
        return 100
    }
    return int((float64(completed)*100/float64(total)) + 0.5)
}

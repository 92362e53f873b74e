// README: Pure admission checks run before a trip row is written.
package trip

import (
    "fmt"
    "time"

    "fleetops/internal/modules/driver"
    "fleetops/internal/modules/vehicle"
)

// CapacityError reports a cargo weight above the vehicle's limit.
type CapacityError struct {
    CargoKg int
    MaxKg   int
}

func (e *CapacityError) Error() string {
    return fmt.Sprintf("cargo weight (%dkg) exceeds vehicle maximum capacity (%dkg)", e.CargoKg, e.MaxKg)
}

// LicenseExpiredError reports a driver license that lapsed before the
// admission date.
type LicenseExpiredError struct {
    Expiry time.Time
    AsOf   time.Time
}

func (e *LicenseExpiredError) Error() string {
    return fmt.Sprintf("driver license expired %s (checked as of %s)",
        e.Expiry.Format("2006-01-02"), e.AsOf.Format("2006-01-02"))
}

func CheckCapacity(v *vehicle.Vehicle, cargoKg int) error {
    if cargoKg > v.MaxCapacityKg {
        return &CapacityError{CargoKg: cargoKg, MaxKg: v.MaxCapacityKg}
    }
    return nil
}

func CheckLicenseValid(d *driver.Driver, asOf time.Time) error {
    if d.LicenseExpiry.Before(asOf) {
        return &LicenseExpiredError{Expiry: d.LicenseExpiry, AsOf: asOf}
    }
    return nil
}

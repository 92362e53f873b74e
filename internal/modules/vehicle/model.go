// README: Vehicle aggregate and lifecycle status definitions.
package vehicle

import (
    "time"

    "fleetops/internal/types"
)

type Status string

const (
    StatusAvailable Status = "Available"
    StatusOnTrip    Status = "On Trip"
    StatusInShop    Status = "In Shop"
    StatusRetired   Status = "Retired"
)

type Category string

const (
    CategoryTruck Category = "Truck"
    CategoryVan   Category = "Van"
    CategoryBike  Category = "Bike"
)

func ValidCategory(c Category) bool {
    switch c {
    case CategoryTruck, CategoryVan, CategoryBike:
        return true
    }
    return false
}

type Vehicle struct {
    ID              int64
    Name            string
    LicensePlate    string
    Category        Category
    MaxCapacityKg   int
    Odometer        int
    AcquisitionCost types.Money
    Region          string
    Status          Status
    CreatedAt       time.Time

    // TotalMaintenanceCost is populated on single-vehicle reads only
    // (read-time join over maintenance_logs, not a stored column).
    TotalMaintenanceCost *types.Money
}

// ListFilter narrows List results; zero values mean "no filter".
type ListFilter struct {
    Status   Status
    Category Category
    Region   string
}

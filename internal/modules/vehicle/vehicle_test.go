// README: Vehicle registry tests (validation, persistence defaults, retire flip).
package vehicle

import (
    "context"
    "errors"
    "testing"

    "fleetops/internal/testdb"
)

func TestRegisterValidation(t *testing.T) {
    svc := NewService(nil)
    ctx := context.Background()

    cases := []struct {
        name string
        cmd  RegisterCommand
    }{
        {"empty name", RegisterCommand{LicensePlate: "P-1", Category: CategoryVan, MaxCapacityKg: 10}},
        {"empty plate", RegisterCommand{Name: "Van", Category: CategoryVan, MaxCapacityKg: 10}},
        {"bad category", RegisterCommand{Name: "Van", LicensePlate: "P-1", Category: "Hovercraft", MaxCapacityKg: 10}},
        {"zero capacity", RegisterCommand{Name: "Van", LicensePlate: "P-1", Category: CategoryVan}},
        {"negative cost", RegisterCommand{Name: "Van", LicensePlate: "P-1", Category: CategoryVan, MaxCapacityKg: 10, AcquisitionCostCents: -1}},
    }
    for _, tc := range cases {
        if _, err := svc.Register(ctx, tc.cmd); !errors.Is(err, ErrValidation) {
            t.Errorf("%s: expected ErrValidation, got %v", tc.name, err)
        }
    }
}

func TestRegisterDefaults(t *testing.T) {
    db := testdb.New(t)
    svc := NewService(NewStore(db))
    ctx := context.Background()

    v, err := svc.Register(ctx, RegisterCommand{
        Name:          "Box Truck 7",
        LicensePlate:  "TRK-007",
        Category:      CategoryTruck,
        MaxCapacityKg: 4500,
    })
    if err != nil {
        t.Fatalf("register: %v", err)
    }
    if v.ID == 0 {
        t.Fatal("expected assigned id")
    }
    if v.Status != StatusAvailable {
        t.Fatalf("new vehicle must start Available, got %s", v.Status)
    }
    if v.Odometer != 0 {
        t.Fatalf("new vehicle must start at odometer 0, got %d", v.Odometer)
    }
    if v.Region != "North America" {
        t.Fatalf("region should default, got %q", v.Region)
    }
    if v.AcquisitionCost.Amount != 0 || v.AcquisitionCost.Currency != "USD" {
        t.Fatalf("unexpected acquisition cost: %+v", v.AcquisitionCost)
    }
}

func TestRegisterDuplicatePlate(t *testing.T) {
    db := testdb.New(t)
    svc := NewService(NewStore(db))
    ctx := context.Background()

    cmd := RegisterCommand{Name: "Van A", LicensePlate: "DUP-1", Category: CategoryVan, MaxCapacityKg: 800}
    if _, err := svc.Register(ctx, cmd); err != nil {
        t.Fatalf("first register: %v", err)
    }
    cmd.Name = "Van B"
    if _, err := svc.Register(ctx, cmd); !errors.Is(err, ErrConflict) {
        t.Fatalf("duplicate plate: expected ErrConflict, got %v", err)
    }
}

func TestListFilters(t *testing.T) {
    db := testdb.New(t)
    svc := NewService(NewStore(db))
    ctx := context.Background()

    seed := []RegisterCommand{
        {Name: "Truck E", LicensePlate: "F-1", Category: CategoryTruck, MaxCapacityKg: 4000, Region: "Europe"},
        {Name: "Van E", LicensePlate: "F-2", Category: CategoryVan, MaxCapacityKg: 900, Region: "Europe"},
        {Name: "Bike NA", LicensePlate: "F-3", Category: CategoryBike, MaxCapacityKg: 20},
    }
    for _, cmd := range seed {
        if _, err := svc.Register(ctx, cmd); err != nil {
            t.Fatalf("seed %s: %v", cmd.LicensePlate, err)
        }
    }

    got, err := svc.List(ctx, ListFilter{Category: CategoryVan})
    if err != nil || len(got) != 1 || got[0].LicensePlate != "F-2" {
        t.Fatalf("category filter: got %d rows, err=%v", len(got), err)
    }
    got, err = svc.List(ctx, ListFilter{Region: "Europe"})
    if err != nil || len(got) != 2 {
        t.Fatalf("region filter: got %d rows, err=%v", len(got), err)
    }
    if _, err := svc.List(ctx, ListFilter{Status: "Flying"}); !errors.Is(err, ErrValidation) {
        t.Fatalf("bad status filter: expected ErrValidation, got %v", err)
    }
}

func TestRetireAndRestore(t *testing.T) {
    db := testdb.New(t)
    svc := NewService(NewStore(db))
    ctx := context.Background()

    v, err := svc.Register(ctx, RegisterCommand{Name: "Old Van", LicensePlate: "RET-1", Category: CategoryVan, MaxCapacityKg: 700})
    if err != nil {
        t.Fatalf("register: %v", err)
    }

    v, err = svc.UpdateFields(ctx, v.ID, map[string]any{"status": "Retired"})
    if err != nil {
        t.Fatalf("retire: %v", err)
    }
    if v.Status != StatusRetired {
        t.Fatalf("expected Retired, got %s", v.Status)
    }

    v, err = svc.UpdateFields(ctx, v.ID, map[string]any{"status": "Available"})
    if err != nil {
        t.Fatalf("restore: %v", err)
    }
    if v.Status != StatusAvailable {
        t.Fatalf("expected Available, got %s", v.Status)
    }

    // Operational states are owned by trip and maintenance flows.
    if _, err := svc.UpdateFields(ctx, v.ID, map[string]any{"status": "On Trip"}); !errors.Is(err, ErrValidation) {
        t.Fatalf("manual On Trip must be rejected, got %v", err)
    }
}

func TestUpdateFieldsMissing(t *testing.T) {
    db := testdb.New(t)
    svc := NewService(NewStore(db))
    if _, err := svc.UpdateFields(context.Background(), 4242, map[string]any{"name": "Ghost"}); !errors.Is(err, ErrNotFound) {
        t.Fatalf("expected ErrNotFound, got %v", err)
    }
}

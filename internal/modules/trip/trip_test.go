// README: Trip service tests (state machine, admission checks, transition cascades).
package trip

import (
    "context"
    "errors"
    "strings"
    "testing"
    "time"

    "github.com/jackc/pgx/v5/pgxpool"

    "fleetops/internal/modules/driver"
    "fleetops/internal/modules/vehicle"
    "fleetops/internal/testdb"
)

// TestCanTransition verifies the transition table without a database.
func TestCanTransition(t *testing.T) {
    cases := []struct {
        from, to Status
        want     bool
    }{
        // legal edges
        {StatusDraft, StatusDispatched, true},
        {StatusDraft, StatusCancelled, true},
        {StatusDispatched, StatusCompleted, true},
        {StatusDispatched, StatusCancelled, true},
        // terminal states have no outgoing edges
        {StatusCompleted, StatusDispatched, false},
        {StatusCompleted, StatusCancelled, false},
        {StatusCancelled, StatusDispatched, false},
        {StatusCancelled, StatusDraft, false},
        // no skipping, no reversing, no self-loops
        {StatusDraft, StatusCompleted, false},
        {StatusDispatched, StatusDraft, false},
        {StatusDraft, StatusDraft, false},
        {StatusDispatched, StatusDispatched, false},
    }
    for _, tc := range cases {
        if got := CanTransition(tc.from, tc.to); got != tc.want {
            t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
        }
    }
}

func TestCheckCapacity(t *testing.T) {
    v := &vehicle.Vehicle{MaxCapacityKg: 1000}
    if err := CheckCapacity(v, 1000); err != nil {
        t.Fatalf("cargo at the limit should pass: %v", err)
    }
    err := CheckCapacity(v, 1500)
    var capErr *CapacityError
    if !errors.As(err, &capErr) {
        t.Fatalf("expected CapacityError, got %v", err)
    }
    if !strings.Contains(err.Error(), "1500") || !strings.Contains(err.Error(), "1000") {
        t.Fatalf("message must include requested and allowed values: %q", err.Error())
    }
}

func TestCheckLicenseValid(t *testing.T) {
    now := time.Now()
    d := &driver.Driver{LicenseExpiry: now.AddDate(1, 0, 0)}
    if err := CheckLicenseValid(d, now); err != nil {
        t.Fatalf("future expiry should pass: %v", err)
    }
    d.LicenseExpiry = now.AddDate(0, 0, -1)
    var licErr *LicenseExpiredError
    if err := CheckLicenseValid(d, now); !errors.As(err, &licErr) {
        t.Fatalf("expected LicenseExpiredError, got %v", err)
    }
}

func TestCreateValidation(t *testing.T) {
    svc := NewService(nil, nil, nil)
    ctx := context.Background()

    if _, err := svc.Create(ctx, CreateCommand{VehicleID: 1, DriverID: 1, CargoWeightKg: 0, Origin: "A", Destination: "B"}); !errors.Is(err, ErrValidation) {
        t.Fatalf("zero cargo: expected ErrValidation, got %v", err)
    }
    if _, err := svc.Create(ctx, CreateCommand{VehicleID: 1, DriverID: 1, CargoWeightKg: 10, Origin: "", Destination: "B"}); !errors.Is(err, ErrValidation) {
        t.Fatalf("empty origin: expected ErrValidation, got %v", err)
    }
    if _, err := svc.TransitionStatus(ctx, TransitionCommand{TripID: 1, To: Status("Teleported")}); !errors.Is(err, ErrValidation) {
        t.Fatalf("unknown status: expected ErrValidation, got %v", err)
    }
}

type fixture struct {
    db       *pgxpool.Pool
    trips    *Service
    vehicles *vehicle.Service
    drivers  *driver.Service
}

func setup(t *testing.T) *fixture {
    t.Helper()
    db := testdb.New(t)
    vehicles := vehicle.NewService(vehicle.NewStore(db))
    drivers := driver.NewService(driver.NewStore(db))
    return &fixture{
        db:       db,
        trips:    NewService(NewStore(db), vehicles, drivers),
        vehicles: vehicles,
        drivers:  drivers,
    }
}

func (f *fixture) mustVehicle(t *testing.T, plate string, capacityKg int) *vehicle.Vehicle {
    t.Helper()
    v, err := f.vehicles.Register(context.Background(), vehicle.RegisterCommand{
        Name:          "Rig " + plate,
        LicensePlate:  plate,
        Category:      vehicle.CategoryTruck,
        MaxCapacityKg: capacityKg,
    })
    if err != nil {
        t.Fatalf("register vehicle: %v", err)
    }
    return v
}

func (f *fixture) mustDriver(t *testing.T, license string, expiry time.Time) *driver.Driver {
    t.Helper()
    d, err := f.drivers.Register(context.Background(), driver.RegisterCommand{
        Name:          "Driver " + license,
        LicenseNumber: license,
        LicenseExpiry: expiry,
        DutyStatus:    driver.DutyOnDuty,
    })
    if err != nil {
        t.Fatalf("register driver: %v", err)
    }
    return d
}

func (f *fixture) mustTrip(t *testing.T, vehicleID, driverID int64, cargoKg int) *Trip {
    t.Helper()
    tr, err := f.trips.Create(context.Background(), CreateCommand{
        VehicleID:     vehicleID,
        DriverID:      driverID,
        CargoWeightKg: cargoKg,
        Origin:        "Portland",
        Destination:   "Quincy",
    })
    if err != nil {
        t.Fatalf("create trip: %v", err)
    }
    return tr
}

func (f *fixture) vehicleStatus(t *testing.T, id int64) (vehicle.Status, int) {
    t.Helper()
    v, err := f.vehicles.Get(context.Background(), id)
    if err != nil {
        t.Fatalf("get vehicle: %v", err)
    }
    return v.Status, v.Odometer
}

func (f *fixture) driverState(t *testing.T, id int64) *driver.Driver {
    t.Helper()
    d, err := f.drivers.Get(context.Background(), id)
    if err != nil {
        t.Fatalf("get driver: %v", err)
    }
    return d
}

func TestCreateTripCapacityExceeded(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    v := f.mustVehicle(t, "CAP-1", 1000)
    d := f.mustDriver(t, "LIC-CAP", time.Now().AddDate(1, 0, 0))

    _, err := f.trips.Create(ctx, CreateCommand{
        VehicleID: v.ID, DriverID: d.ID, CargoWeightKg: 1500, Origin: "P", Destination: "Q",
    })
    var capErr *CapacityError
    if !errors.As(err, &capErr) {
        t.Fatalf("expected CapacityError, got %v", err)
    }

    trips, err := f.trips.List(ctx, "")
    if err != nil {
        t.Fatalf("list trips: %v", err)
    }
    if len(trips) != 0 {
        t.Fatalf("rejected trip must not be persisted, found %d rows", len(trips))
    }
}

func TestCreateTripExpiredLicense(t *testing.T) {
    f := setup(t)
    v := f.mustVehicle(t, "EXP-1", 1000)
    d := f.mustDriver(t, "LIC-EXP", time.Now().AddDate(0, 0, -1))

    _, err := f.trips.Create(context.Background(), CreateCommand{
        VehicleID: v.ID, DriverID: d.ID, CargoWeightKg: 100, Origin: "P", Destination: "Q",
    })
    var licErr *LicenseExpiredError
    if !errors.As(err, &licErr) {
        t.Fatalf("expected LicenseExpiredError, got %v", err)
    }
}

func TestCreateTripMissingReferences(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    v := f.mustVehicle(t, "REF-1", 1000)
    d := f.mustDriver(t, "LIC-REF", time.Now().AddDate(1, 0, 0))

    _, err := f.trips.Create(ctx, CreateCommand{VehicleID: 9999, DriverID: d.ID, CargoWeightKg: 10, Origin: "P", Destination: "Q"})
    if !errors.Is(err, vehicle.ErrNotFound) {
        t.Fatalf("expected vehicle not-found, got %v", err)
    }
    _, err = f.trips.Create(ctx, CreateCommand{VehicleID: v.ID, DriverID: 9999, CargoWeightKg: 10, Origin: "P", Destination: "Q"})
    if !errors.Is(err, driver.ErrNotFound) {
        t.Fatalf("expected driver not-found, got %v", err)
    }
}

func TestDispatchCompleteFlow(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    v := f.mustVehicle(t, "FLOW-1", 2000)
    d := f.mustDriver(t, "LIC-FLOW", time.Now().AddDate(1, 0, 0))
    tr := f.mustTrip(t, v.ID, d.ID, 500)

    if tr.Status != StatusDraft {
        t.Fatalf("new trip must be Draft, got %s", tr.Status)
    }

    tr, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: tr.ID, To: StatusDispatched})
    if err != nil {
        t.Fatalf("dispatch: %v", err)
    }
    if tr.Status != StatusDispatched {
        t.Fatalf("expected Dispatched, got %s", tr.Status)
    }
    if tr.StartOdometer == nil || *tr.StartOdometer != 0 {
        t.Fatalf("start odometer should capture the vehicle reading at dispatch")
    }
    if st, _ := f.vehicleStatus(t, v.ID); st != vehicle.StatusOnTrip {
        t.Fatalf("vehicle must be On Trip after dispatch, got %s", st)
    }
    if ds := f.driverState(t, d.ID); ds.DutyStatus != driver.DutyOnTrip {
        t.Fatalf("driver must be On Trip after dispatch, got %s", ds.DutyStatus)
    }

    final := 50000
    tr, err = f.trips.TransitionStatus(ctx, TransitionCommand{TripID: tr.ID, To: StatusCompleted, FinalOdometer: &final})
    if err != nil {
        t.Fatalf("complete: %v", err)
    }
    if tr.Status != StatusCompleted {
        t.Fatalf("expected Completed, got %s", tr.Status)
    }
    if st, odo := f.vehicleStatus(t, v.ID); st != vehicle.StatusAvailable || odo != 50000 {
        t.Fatalf("vehicle after completion: status=%s odometer=%d", st, odo)
    }
    ds := f.driverState(t, d.ID)
    if ds.TripsCompleted != 1 || ds.TripsTotal != 1 || ds.SafetyScore != 100 {
        t.Fatalf("driver counters after completion: completed=%d total=%d score=%d",
            ds.TripsCompleted, ds.TripsTotal, ds.SafetyScore)
    }
}

func TestCancelRecomputesSafetyScore(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    v := f.mustVehicle(t, "CXL-1", 2000)
    d := f.mustDriver(t, "LIC-CXL", time.Now().AddDate(1, 0, 0))

    // First trip completes, second cancels: 1 of 2 -> score 50.
    first := f.mustTrip(t, v.ID, d.ID, 100)
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: first.ID, To: StatusDispatched}); err != nil {
        t.Fatalf("dispatch first: %v", err)
    }
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: first.ID, To: StatusCompleted}); err != nil {
        t.Fatalf("complete first: %v", err)
    }

    second := f.mustTrip(t, v.ID, d.ID, 100)
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: second.ID, To: StatusCancelled}); err != nil {
        t.Fatalf("cancel second: %v", err)
    }

    ds := f.driverState(t, d.ID)
    if ds.TripsCompleted != 1 || ds.TripsTotal != 2 || ds.SafetyScore != 50 {
        t.Fatalf("driver counters after cancel: completed=%d total=%d score=%d",
            ds.TripsCompleted, ds.TripsTotal, ds.SafetyScore)
    }
    if st, _ := f.vehicleStatus(t, v.ID); st != vehicle.StatusAvailable {
        t.Fatalf("vehicle must return to Available after cancel, got %s", st)
    }
}

func TestTerminalTripRejectsFurtherTransitions(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    v := f.mustVehicle(t, "TERM-1", 2000)
    d := f.mustDriver(t, "LIC-TERM", time.Now().AddDate(1, 0, 0))
    tr := f.mustTrip(t, v.ID, d.ID, 100)

    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: tr.ID, To: StatusDispatched}); err != nil {
        t.Fatalf("dispatch: %v", err)
    }
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: tr.ID, To: StatusCompleted}); err != nil {
        t.Fatalf("complete: %v", err)
    }

    _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: tr.ID, To: StatusDispatched})
    var invalid *InvalidTransitionError
    if !errors.As(err, &invalid) {
        t.Fatalf("expected InvalidTransitionError, got %v", err)
    }
    if invalid.From != StatusCompleted || invalid.To != StatusDispatched {
        t.Fatalf("error must carry current and requested status: %+v", invalid)
    }

    got, err := f.trips.Get(ctx, tr.ID)
    if err != nil {
        t.Fatalf("get trip: %v", err)
    }
    if got.Status != StatusCompleted {
        t.Fatalf("rejected transition must not change state, got %s", got.Status)
    }
}

func TestCompletionNeverRegressesOdometer(t *testing.T) {
    f := setup(t)
    ctx := context.Background()
    v := f.mustVehicle(t, "ODO-1", 2000)
    d := f.mustDriver(t, "LIC-ODO", time.Now().AddDate(1, 0, 0))

    // Run one trip out to 48000 km.
    first := f.mustTrip(t, v.ID, d.ID, 100)
    high := 48000
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: first.ID, To: StatusDispatched}); err != nil {
        t.Fatalf("dispatch: %v", err)
    }
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: first.ID, To: StatusCompleted, FinalOdometer: &high}); err != nil {
        t.Fatalf("complete: %v", err)
    }

    // A lower final reading on the next trip must not move the odometer back.
    second := f.mustTrip(t, v.ID, d.ID, 100)
    low := 40000
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: second.ID, To: StatusDispatched}); err != nil {
        t.Fatalf("dispatch second: %v", err)
    }
    if _, err := f.trips.TransitionStatus(ctx, TransitionCommand{TripID: second.ID, To: StatusCompleted, FinalOdometer: &low}); err != nil {
        t.Fatalf("complete second: %v", err)
    }
    if _, odo := f.vehicleStatus(t, v.ID); odo != 48000 {
        t.Fatalf("odometer must not regress, got %d", odo)
    }
}

func TestTransitionMissingTrip(t *testing.T) {
    f := setup(t)
    _, err := f.trips.TransitionStatus(context.Background(), TransitionCommand{TripID: 4242, To: StatusDispatched})
    if !errors.Is(err, ErrNotFound) {
        t.Fatalf("expected ErrNotFound, got %v", err)
    }
}

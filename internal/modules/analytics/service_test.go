// README: Analytics cache behavior tests backed by miniredis.
package analytics

import (
    "context"
    "encoding/json"
    "testing"
    "time"

    "github.com/alicebob/miniredis/v2"
    "github.com/redis/go-redis/v9"
    "github.com/stretchr/testify/assert"
    "github.com/stretchr/testify/require"

    "fleetops/internal/config"
)

func newCache(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
    t.Helper()
    mr := miniredis.RunT(t)
    return mr, redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestSummaryServedFromCache(t *testing.T) {
    mr, client := newCache(t)
    // Store is nil: any fallthrough to Postgres would panic the test,
    // so a clean pass proves the cached value was used.
    svc := NewService(nil, client, config.AnalyticsConfig{CacheTTL: time.Minute})

    want := Summary{
        UtilizationRate:          40,
        TotalVehicles:            5,
        TotalAcquisitionCents:    1_000_000,
        TotalMaintenanceCents:    50_000,
        FleetCostPerVehicleCents: 210_000,
    }
    data, err := json.Marshal(want)
    require.NoError(t, err)
    require.NoError(t, mr.Set("analytics:summary", string(data)))

    got, err := svc.Summary(context.Background())
    require.NoError(t, err)
    assert.Equal(t, &want, got)
}

func TestDashboardStatsServedFromCache(t *testing.T) {
    mr, client := newCache(t)
    svc := NewService(nil, client, config.AnalyticsConfig{CacheTTL: time.Minute})

    want := DashboardStats{ActiveFleet: 3, MaintenanceAlerts: 1, UtilizationRate: 60, PendingCargoKg: 1200}
    data, err := json.Marshal(want)
    require.NoError(t, err)
    require.NoError(t, mr.Set("analytics:dashboard", string(data)))

    got, err := svc.DashboardStats(context.Background())
    require.NoError(t, err)
    assert.Equal(t, &want, got)
}

func TestCacheSetWritesWithTTL(t *testing.T) {
    mr, client := newCache(t)
    svc := NewService(nil, client, config.AnalyticsConfig{CacheTTL: 45 * time.Second})

    rows := []MonthlyRow{{Month: "2026-08", RevenueCents: 100_000, NetProfitCents: 80_000}}
    svc.cacheSet(context.Background(), "analytics:monthly", rows)

    raw, err := mr.Get("analytics:monthly")
    require.NoError(t, err)
    var got []MonthlyRow
    require.NoError(t, json.Unmarshal([]byte(raw), &got))
    assert.Equal(t, rows, got)
    assert.Equal(t, 45*time.Second, mr.TTL("analytics:monthly"))

    var hit []MonthlyRow
    assert.True(t, svc.cacheGet(context.Background(), "analytics:monthly", &hit))
    assert.Equal(t, rows, hit)
}

func TestCorruptCacheFallsThrough(t *testing.T) {
    mr, client := newCache(t)
    svc := NewService(nil, client, config.AnalyticsConfig{})

    require.NoError(t, mr.Set("analytics:summary", "{not json"))

    var out Summary
    assert.False(t, svc.cacheGet(context.Background(), "analytics:summary", &out))
}

func TestNilCacheClientIsSafe(t *testing.T) {
    svc := NewService(nil, nil, config.AnalyticsConfig{})
    var out Summary
    assert.False(t, svc.cacheGet(context.Background(), "analytics:summary", &out))
    // Must not panic.
    svc.cacheSet(context.Background(), "analytics:summary", out)
}

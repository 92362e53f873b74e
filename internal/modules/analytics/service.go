// README: Analytics service; caches dashboard reads in Redis with a short TTL.
package analytics

import (
    "context"
    "encoding/json"
    "time"

    "github.com/redis/go-redis/v9"

    "fleetops/internal/config"
)

const (
    keySummary   = "analytics:summary"
    keyMonthly   = "analytics:monthly"
    keyDashboard = "analytics:dashboard"
)

type Service struct {
    store *Store
    cache *redis.Client
    cfg   config.AnalyticsConfig
}

// NewService accepts a nil cache client; reads then always hit Postgres.
func NewService(store *Store, cache *redis.Client, cfg config.AnalyticsConfig) *Service {
    return &Service{store: store, cache: cache, cfg: cfg}
}

func (s *Service) Summary(ctx context.Context) (*Summary, error) {
    var out Summary
    if s.cacheGet(ctx, keySummary, &out) {
        return &out, nil
    }
    sum, err := s.store.Summary(ctx)
    if err != nil {
        return nil, err
    }
    s.cacheSet(ctx, keySummary, sum)
    return sum, nil
}

func (s *Service) Monthly(ctx context.Context) ([]MonthlyRow, error) {
    var out []MonthlyRow
    if s.cacheGet(ctx, keyMonthly, &out) {
        return out, nil
    }
    rows, err := s.store.Monthly(ctx, s.cfg.RevenuePerTrip, s.cfg.FuelCostPercent)
    if err != nil {
        return nil, err
    }
    s.cacheSet(ctx, keyMonthly, rows)
    return rows, nil
}

func (s *Service) DashboardStats(ctx context.Context) (*DashboardStats, error) {
    var out DashboardStats
    if s.cacheGet(ctx, keyDashboard, &out) {
        return &out, nil
    }
    stats, err := s.store.DashboardStats(ctx)
    if err != nil {
        return nil, err
    }
    s.cacheSet(ctx, keyDashboard, stats)
    return stats, nil
}

// cacheGet returns true on a hit. Cache failures degrade to a DB read,
// never to a request error.
func (s *Service) cacheGet(ctx context.Context, key string, dest any) bool {
    if s.cache == nil {
        return false
    }
    data, err := s.cache.Get(ctx, key).Bytes()
    if err != nil {
        return false
    }
    return json.Unmarshal(data, dest) == nil
}

func (s *Service) cacheSet(ctx context.Context, key string, v any) {
    if s.cache == nil {
        return
    }
    data, err := json.Marshal(v)
    if err != nil {
        return
    }
    ttl := s.cfg.CacheTTL
    if ttl <= 0 {
        ttl = 30 * time.Second
    }
    _ = s.cache.Set(ctx, key, data, ttl).Err()
}

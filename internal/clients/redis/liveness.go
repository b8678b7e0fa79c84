package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/crm-backend/internal/platform/logger"
)

const defaultLivenessKey = "crm:heartbeat"

// Liveness stores the time of the last heartbeat under one key with a TTL,
// so a missing key means the scheduler has been silent for longer than ttl.
type Liveness interface {
	RecordHeartbeat(ctx context.Context, at time.Time) error
	LastHeartbeat(ctx context.Context) (time.Time, bool, error)
	Close() error
}

type LivenessConfig struct {
	Addr     string
	Password string
	DB       int
	Key      string
	TTL      time.Duration
}

type liveness struct {
	log *logger.Logger
	rdb *goredis.Client
	key string
	ttl time.Duration
}

func NewLiveness(ctx context.Context, log *logger.Logger, cfg LivenessConfig) (Liveness, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr := strings.TrimSpace(cfg.Addr)
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return newLiveness(log, rdb, cfg), nil
}

func newLiveness(log *logger.Logger, rdb *goredis.Client, cfg LivenessConfig) *liveness {
	key := strings.TrimSpace(cfg.Key)
	if key == "" {
		key = defaultLivenessKey
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &liveness{
		log: log.With("service", "RedisLiveness"),
		rdb: rdb,
		key: key,
		ttl: ttl,
	}
}

func (l *liveness) RecordHeartbeat(ctx context.Context, at time.Time) error {
	if l == nil || l.rdb == nil {
		return fmt.Errorf("redis liveness not initialized")
	}
	return l.rdb.Set(ctx, l.key, at.UTC().Format(time.RFC3339Nano), l.ttl).Err()
}

func (l *liveness) LastHeartbeat(ctx context.Context) (time.Time, bool, error) {
	if l == nil || l.rdb == nil {
		return time.Time{}, false, fmt.Errorf("redis liveness not initialized")
	}
	raw, err := l.rdb.Get(ctx, l.key).Result()
	if errors.Is(err, goredis.Nil) {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}
	at, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		l.log.Warn("Unreadable heartbeat value", "key", l.key, "error", err)
		return time.Time{}, false, nil
	}
	return at, true, nil
}

func (l *liveness) Close() error {
	if l == nil || l.rdb == nil {
		return nil
	}
	return l.rdb.Close()
}

package sources

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"scraper-dashboard/internal/models"
	"scraper-dashboard/internal/pkg/logger"
)

const cacheKeyPrefix = "dashboard:records:"

// SnapshotCache는 인코딩된 후보 집합을 보관하는 캐시입니다. 키가 없으면 found가 false입니다.
type SnapshotCache interface {
	Get(ctx context.Context, key string) (data []byte, found bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// RedisCache는 go-redis 클라이언트로 구현한 SnapshotCache입니다.
type RedisCache struct {
	client redis.UniversalClient
}

// NewRedisCache는 단일 노드 Redis에 연결하는 RedisCache를 생성하고 연결을 확인합니다.
func NewRedisCache(ctx context.Context, addr, password string, db int) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return &RedisCache{client: client}, nil
}

func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (c *RedisCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Cached는 카테고리별 후보 집합을 캐시에 보관하는 DataSource 래퍼입니다.
// 캐시 오류는 로그만 남기고 원본 DataSource로 진행합니다.
type Cached struct {
	models.DataSource
	cache  SnapshotCache
	ttl    time.Duration
	logger *logger.Logger
}

// NewCached는 새로운 Cached 인스턴스를 생성합니다.
func NewCached(next models.DataSource, cache SnapshotCache, ttl time.Duration, log *logger.Logger) *Cached {
	return &Cached{
		DataSource: next,
		cache:      cache,
		ttl:        ttl,
		logger:     logger.OrGlobal(log).Named("cache"),
	}
}

func (c *Cached) Records(ctx context.Context, category string) ([]models.Record, error) {
	key := cacheKeyPrefix + category

	data, found, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.Warn("캐시 조회 실패", zap.String("key", key), zap.Error(err))
	}
	if found {
		var records models.Records
		decodeErr := json.Unmarshal(data, &records)
		if decodeErr == nil {
			return records, nil
		}
		c.logger.Warn("캐시 데이터 디코딩 실패", zap.String("key", key), zap.Error(decodeErr))
	}

	records, err := c.DataSource.Records(ctx, category)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(models.Records(records))
	if err != nil {
		c.logger.Warn("캐시 인코딩 실패", zap.String("key", key), zap.Error(err))
		return records, nil
	}
	if err := c.cache.Set(ctx, key, encoded, c.ttl); err != nil {
		c.logger.Warn("캐시 저장 실패", zap.String("key", key), zap.Error(err))
	}
	return records, nil
}

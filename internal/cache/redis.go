package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"fitmate/internal/scoring"

	"github.com/redis/go-redis/v9"
)

const standardKeyPrefix = "standard:"

type RedisClient struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisClient() (*RedisClient, error) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		redisURL = "redis://localhost:6379/0"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	ctx := context.Background()

	// Test connection
	_, err = client.Ping(ctx).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisClient{
		client: client,
		ctx:    ctx,
	}, nil
}

func (r *RedisClient) Close() error {
	return r.client.Close()
}

// Store resolved standard bands under their lookup key with expiration
func (r *RedisClient) StoreStandard(key string, bands *scoring.StandardBands, duration time.Duration) error {
	jsonData, err := json.Marshal(bands)
	if err != nil {
		return fmt.Errorf("failed to marshal standard bands: %w", err)
	}

	err = r.client.Set(r.ctx, standardKeyPrefix+key, jsonData, duration).Err()
	if err != nil {
		return fmt.Errorf("failed to store standard in Redis: %w", err)
	}

	return nil
}

// Get cached standard bands
func (r *RedisClient) GetStandard(key string) (*scoring.StandardBands, bool, error) {
	data, err := r.client.Get(r.ctx, standardKeyPrefix+key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil // Key doesn't exist
		}
		return nil, false, fmt.Errorf("failed to get standard from Redis: %w", err)
	}

	var bands scoring.StandardBands
	if err := json.Unmarshal([]byte(data), &bands); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal standard bands: %w", err)
	}

	return &bands, true, nil
}

// Drop every cached standard, used after the standards tables are edited
func (r *RedisClient) InvalidateStandards() error {
	iter := r.client.Scan(r.ctx, 0, standardKeyPrefix+"*", 0).Iterator()
	var keys []string
	for iter.Next(r.ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan standard keys: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	return r.client.Del(r.ctx, keys...).Err()
}

// Get Redis status
func (r *RedisClient) GetStatus() (map[string]interface{}, error) {
	info, err := r.client.Info(r.ctx).Result()
	if err != nil {
		return nil, err
	}

	stats := r.client.PoolStats()

	return map[string]interface{}{
		"connected":    true,
		"hits":         stats.Hits,
		"misses":       stats.Misses,
		"active_conns": stats.TotalConns,
		"redis_info":   info,
	}, nil
}

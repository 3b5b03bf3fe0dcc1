package idmap

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis 每类实体一个 hash: pinseed:idmap:<run>:<kind>
// 导入结束后下游任务仍可按生成器 id 查到库内 id
type Redis struct {
	rds   *redis.Client
	runID string
	ttl   time.Duration
}

func NewRedis(rds *redis.Client, runID string, ttl time.Duration) *Redis {
	return &Redis{rds: rds, runID: runID, ttl: ttl}
}

func (r *Redis) key(kind Kind) string {
	return fmt.Sprintf("pinseed:idmap:%s:%s", r.runID, kind)
}

func (r *Redis) Put(ctx context.Context, kind Kind, sourceID, storeID string) error {
	key := r.key(kind)
	_, err := r.rds.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key, sourceID, storeID)
		if r.ttl > 0 {
			pipe.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("idmap.Redis.Put error: %w", err)
	}
	return nil
}

func (r *Redis) Get(ctx context.Context, kind Kind, sourceID string) (string, bool, error) {
	v, err := r.rds.HGet(ctx, r.key(kind), sourceID).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("idmap.Redis.Get error: %w", err)
	}
	return v, true, nil
}

func (r *Redis) Len(ctx context.Context, kind Kind) (int, error) {
	n, err := r.rds.HLen(ctx, r.key(kind)).Result()
	if err != nil {
		return 0, fmt.Errorf("idmap.Redis.Len error: %w", err)
	}
	return int(n), nil
}

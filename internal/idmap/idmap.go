package idmap

import (
	"Pinseed/config"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Kind 映射的实体类别
type Kind string

const (
	KindUser  Kind = "user"
	KindBoard Kind = "board"
	KindPin   Kind = "pin"
)

var Kinds = []Kind{KindUser, KindBoard, KindPin}

// Store 生成器 id 到库内 id 的映射
// 已存在而被跳过的实体同样记录，后续阶段才能解析到它
type Store interface {
	Put(ctx context.Context, kind Kind, sourceID, storeID string) error
	// Get 未命中时返回 "", false, nil
	Get(ctx context.Context, kind Kind, sourceID string) (string, bool, error)
	Len(ctx context.Context, kind Kind) (int, error)
}

var ErrRedisUnavailable = errors.New("idmap: redis client not configured")

// New 按 loader.idmap 选择实现
func New(conf *config.LoaderConfig, rds *redis.Client, runID string) (Store, error) {
	switch conf.IDMap {
	case "", config.IDMapMemory:
		return NewMemory(), nil
	case config.IDMapRedis:
		if rds == nil {
			return nil, ErrRedisUnavailable
		}
		return NewRedis(rds, runID, time.Duration(conf.IDMapTTL)*time.Second), nil
	default:
		return nil, fmt.Errorf("idmap: unknown store %q", conf.IDMap)
	}
}

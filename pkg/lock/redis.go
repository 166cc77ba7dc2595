package lock

import (
	"context"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const retryInterval = 25 * time.Millisecond

// 仅当 value 仍是自己的 token 时才删除，避免误删他人续上的锁
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker 基于 SET NX PX 的分布式锁，多实例部署时使用
type RedisLocker struct {
	Client *redis.Client
	Prefix string
}

func NewRedisLocker(client *redis.Client) *RedisLocker {
	return &RedisLocker{Client: client, Prefix: "lock:"}
}

func (l *RedisLocker) Lock(ctx context.Context, key string, ttl time.Duration) (func(), error) {
	fullKey := l.Prefix + key
	token := uuid.New().String()
	deadline := time.Now().Add(ttl)

	for {
		ok, err := l.Client.SetNX(ctx, fullKey, token, ttl).Result()
		if err != nil {
			return nil, err
		}
		if ok {
			break
		}
		if time.Now().After(deadline) {
			return nil, ErrLockTimeout
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryInterval):
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// 请求 ctx 可能已取消，释放使用独立 ctx
			releaseScript.Run(context.Background(), l.Client, []string{fullKey}, token)
		})
	}, nil
}

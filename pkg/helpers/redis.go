package helpers

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// KeyRevokedToken is the Redis key holding a denylisted token id. It is set
// on logout with a TTL equal to the token's remaining validity, so the
// denylist cleans itself up as tokens expire.
func KeyRevokedToken(jti string) string {
	return "token:revoked:" + jti
}

// RedisDenylist stores revoked token ids in Redis with a TTL.
type RedisDenylist struct {
	Client *redis.Client
}

func NewRedisDenylist(rdb *redis.Client) *RedisDenylist {
	return &RedisDenylist{Client: rdb}
}

func (d *RedisDenylist) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	return d.Client.Set(ctx, KeyRevokedToken(jti), "1", ttl).Err()
}

// IsRevoked fails open when Redis is unreachable: the token still carries a
// valid signature, and blocking all traffic on a cache outage is worse.
func (d *RedisDenylist) IsRevoked(ctx context.Context, jti string) bool {
	v, err := d.Client.Get(ctx, KeyRevokedToken(jti)).Result()
	if err != nil {
		return false
	}
	return v == "1"
}

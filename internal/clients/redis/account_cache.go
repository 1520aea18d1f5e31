package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

const accountsKey = "person:social_media_accounts"

// AccountCache holds the full social media account list. A miss is reported
// as ok=false with a nil error.
type AccountCache interface {
	Get(ctx context.Context) (accounts []*person.SocialMediaAccount, ok bool, err error)
	Set(ctx context.Context, accounts []*person.SocialMediaAccount) error
	Invalidate(ctx context.Context) error
	Close() error
}

type accountCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
	key string
}

// NewAccountCache dials addr and verifies the connection.
func NewAccountCache(addr string, ttl time.Duration, log *logger.Logger) (AccountCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	addr = strings.TrimSpace(addr)
	if addr == "" {
		return nil, fmt.Errorf("missing redis addr")
	}

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return NewAccountCacheFromClient(rdb, ttl, log), nil
}

func NewAccountCacheFromClient(rdb *goredis.Client, ttl time.Duration, log *logger.Logger) AccountCache {
	return &accountCache{
		log: log.With("service", "RedisAccountCache"),
		rdb: rdb,
		ttl: ttl,
		key: accountsKey,
	}
}

func (c *accountCache) Get(ctx context.Context) ([]*person.SocialMediaAccount, bool, error) {
	raw, err := c.rdb.Get(ctx, c.key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", c.key, err)
	}
	var accounts []*person.SocialMediaAccount
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, false, fmt.Errorf("decode cached accounts: %w", err)
	}
	return accounts, true, nil
}

func (c *accountCache) Set(ctx context.Context, accounts []*person.SocialMediaAccount) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return fmt.Errorf("encode accounts: %w", err)
	}
	if err := c.rdb.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", c.key, err)
	}
	return nil
}

func (c *accountCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w", c.key, err)
	}
	c.log.Debug("Invalidated account cache")
	return nil
}

func (c *accountCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}

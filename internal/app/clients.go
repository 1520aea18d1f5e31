package app

import (
	redisclient "github.com/yungbote/personservice-backend/internal/clients/redis"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

// wireAccountCache dials redis when configured. A failed dial disables the
// cache instead of failing startup.
func wireAccountCache(cfg Config, log *logger.Logger) redisclient.AccountCache {
	if cfg.Redis.Addr == "" {
		log.Info("Account cache disabled (REDIS_ADDR unset)")
		return nil
	}
	cache, err := redisclient.NewAccountCache(cfg.Redis.Addr, cfg.AccountCacheTTL(), log)
	if err != nil {
		log.Warn("Account cache unavailable (continuing without)", "addr", cfg.Redis.Addr, "error", err)
		return nil
	}
	log.Info("Account cache enabled", "addr", cfg.Redis.Addr, "ttl", cfg.AccountCacheTTL().String())
	return cache
}

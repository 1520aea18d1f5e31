package app

import (
	"gorm.io/gorm"

	redisclient "github.com/yungbote/personservice-backend/internal/clients/redis"
	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/observability"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
	"github.com/yungbote/personservice-backend/internal/services/commands"
	"github.com/yungbote/personservice-backend/internal/services/queries"
)

// wireMediator registers every command and query handler.
func wireMediator(db *gorm.DB, log *logger.Logger, reposet Repos, cache redisclient.AccountCache, metrics *observability.Metrics) *mediator.Mediator {
	log.Info("Wiring mediator...")
	m := mediator.New(log,
		mediator.WithScope(repos.Scope(db)),
		mediator.WithMetrics(metrics),
		mediator.WithBehaviors(mediator.LoggingBehavior(log)),
	)

	var (
		invalidator commands.CacheInvalidator
		reader      queries.AccountCache
	)
	if cache != nil {
		invalidator = cache
		reader = cache
	}
	commands.Register(m, reposet.Person, reposet.SocialMediaAccount, invalidator, log)
	queries.Register(m, reposet.Person, reposet.SocialMediaAccount, reader, metrics, log)
	return m
}

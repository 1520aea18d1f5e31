package queries

import (
	"context"

	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/observability"
	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

// AccountCache is the read-through store for the account list.
type AccountCache interface {
	Get(ctx context.Context) ([]*person.SocialMediaAccount, bool, error)
	Set(ctx context.Context, accounts []*person.SocialMediaAccount) error
}

type getSocialMediaAccountsHandler struct {
	accounts repos.Repository[person.SocialMediaAccount]
	cache    AccountCache
	metrics  *observability.Metrics
	log      *logger.Logger
}

// NewGetSocialMediaAccountsHandler wires the handler. cache and metrics may be
// nil; cache faults never fail the query.
func NewGetSocialMediaAccountsHandler(
	accounts repos.Repository[person.SocialMediaAccount],
	cache AccountCache,
	metrics *observability.Metrics,
	baseLog *logger.Logger,
) mediator.Handler[*GetSocialMediaAccounts, []*person.SocialMediaAccount] {
	return &getSocialMediaAccountsHandler{
		accounts: accounts,
		cache:    cache,
		metrics:  metrics,
		log:      baseLog.With("handler", "GetSocialMediaAccountsHandler"),
	}
}

func (h *getSocialMediaAccountsHandler) Handle(ctx context.Context, q *GetSocialMediaAccounts) ([]*person.SocialMediaAccount, error) {
	if q == nil {
		return nil, apperrors.InvalidArgument("query cannot be nil")
	}
	log := h.log.WithContext(ctx)
	log.Info("Getting social media accounts")

	if h.cache != nil {
		cached, ok, err := h.cache.Get(ctx)
		switch {
		case err != nil:
			h.metrics.ObserveCacheLookup("error")
			log.Warn("Reading account cache failed", "error", err)
		case ok:
			h.metrics.ObserveCacheLookup("hit")
			return cached, nil
		default:
			h.metrics.ObserveCacheLookup("miss")
		}
	}

	all, err := h.accounts.GetAll(ctx)
	if err != nil {
		log.Error("Getting social media accounts failed", "error", err)
		return nil, err
	}

	if h.cache != nil && len(all) > 0 {
		if err := h.cache.Set(ctx, all); err != nil {
			log.Warn("Writing account cache failed", "error", err)
		}
	}
	return all, nil
}

package commands

import (
	"context"

	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/mediator"
	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

type addSocialMediaAccountHandler struct {
	accounts repos.Repository[person.SocialMediaAccount]
	log      *logger.Logger
}

func NewAddSocialMediaAccountHandler(
	accounts repos.Repository[person.SocialMediaAccount],
	baseLog *logger.Logger,
) mediator.Handler[*AddSocialMediaAccount, uuid.UUID] {
	return &addSocialMediaAccountHandler{
		accounts: accounts,
		log:      baseLog.With("handler", "AddSocialMediaAccountHandler"),
	}
}

func (h *addSocialMediaAccountHandler) Handle(ctx context.Context, req *AddSocialMediaAccount) (uuid.UUID, error) {
	if req == nil || req.SocialMediaAccount == nil {
		return uuid.Nil, apperrors.InvalidArgument("social media account to add cannot be nil")
	}
	log := h.log.WithContext(ctx)
	log.Info("Adding social media account", "type", req.SocialMediaAccount.Type)

	added, err := h.accounts.Add(ctx, req.SocialMediaAccount)
	if err != nil {
		log.Error("Adding social media account failed", "type", req.SocialMediaAccount.Type, "error", err)
		return uuid.Nil, err
	}
	return added.ID, nil
}

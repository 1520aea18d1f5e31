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

// CacheInvalidator drops cached account lists after new accounts are stored.
type CacheInvalidator interface {
	Invalidate(ctx context.Context) error
}

type addPersonHandler struct {
	persons repos.Repository[person.Person]
	sender  mediator.Sender
	cache   CacheInvalidator
	log     *logger.Logger
}

// NewAddPersonHandler wires the handler. cache may be nil.
func NewAddPersonHandler(
	persons repos.Repository[person.Person],
	sender mediator.Sender,
	cache CacheInvalidator,
	baseLog *logger.Logger,
) mediator.Handler[*AddPerson, uuid.UUID] {
	return &addPersonHandler{
		persons: persons,
		sender:  sender,
		cache:   cache,
		log:     baseLog.With("handler", "AddPersonHandler"),
	}
}

func (h *addPersonHandler) Handle(ctx context.Context, req *AddPerson) (uuid.UUID, error) {
	if req == nil || req.Person == nil {
		return uuid.Nil, apperrors.InvalidArgument("person to add cannot be nil")
	}
	log := h.log.WithContext(ctx)
	log.Info("Adding person", "first_name", req.Person.FirstName, "last_name", req.Person.LastName)

	created, err := h.resolveAccounts(ctx, req)
	if err != nil {
		log.Error("Resolving social media accounts failed", "error", err)
		return uuid.Nil, err
	}

	added, err := h.persons.Add(ctx, req.Person)
	if err != nil {
		log.Error("Adding person failed", "error", err)
		return uuid.Nil, err
	}
	if err := h.persons.Commit(ctx); err != nil {
		log.Error("Committing person failed", "person_id", added.ID, "error", err)
		return uuid.Nil, err
	}

	if created > 0 && h.cache != nil {
		if err := h.cache.Invalidate(ctx); err != nil {
			log.Warn("Invalidating account cache failed", "error", err)
		}
	}
	log.Info("Added person", "person_id", added.ID, "created_accounts", created)
	return added.ID, nil
}

// resolveAccounts creates every embedded account that has no id yet, one at a
// time, and points its association at the returned id.
func (h *addPersonHandler) resolveAccounts(ctx context.Context, req *AddPerson) (int, error) {
	created := 0
	for _, assoc := range req.Person.PersonSocialMediaAccounts {
		if assoc == nil {
			return created, apperrors.InvalidArgument("social media account association cannot be nil")
		}
		if !assoc.NeedsAccount() {
			continue
		}
		if assoc.SocialMediaAccount == nil {
			return created, apperrors.InvalidArgument("social media account association has neither an id nor an account")
		}
		id, err := mediator.Send[uuid.UUID](ctx, h.sender, &AddSocialMediaAccount{
			CorrelationID:      req.CorrelationID,
			SocialMediaAccount: assoc.SocialMediaAccount,
		})
		if err != nil {
			return created, err
		}
		assoc.SocialMediaAccountID = id
		assoc.SocialMediaAccount.ID = id
		created++
	}
	return created, nil
}

package commands

import (
	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

// Register binds both command handlers on m. Nested account creation is sent
// back through m.
func Register(
	m *mediator.Mediator,
	persons repos.PersonRepo,
	accounts repos.SocialMediaAccountRepo,
	cache CacheInvalidator,
	log *logger.Logger,
) {
	mediator.Register[*AddSocialMediaAccount, uuid.UUID](m, NewAddSocialMediaAccountHandler(accounts, log))
	mediator.Register[*AddPerson, uuid.UUID](m, NewAddPersonHandler(persons, m, cache, log))
}

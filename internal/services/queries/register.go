package queries

import (
	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/observability"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

func Register(
	m *mediator.Mediator,
	persons repos.PersonRepo,
	accounts repos.SocialMediaAccountRepo,
	cache AccountCache,
	metrics *observability.Metrics,
	log *logger.Logger,
) {
	mediator.Register[*GetPerson, *person.Person](m, NewGetPersonHandler(persons, log))
	mediator.Register[*GetPersons, []*person.Person](m, NewGetPersonsHandler(persons, log))
	mediator.Register[*GetSocialMediaAccounts, []*person.SocialMediaAccount](m, NewGetSocialMediaAccountsHandler(accounts, cache, metrics, log))
}

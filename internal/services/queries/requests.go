package queries

import (
	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/mediator"
)

// GetPerson returns the person with PersonID, or nil when there is none.
type GetPerson struct {
	mediator.Returns[*person.Person]
	PersonID      uuid.UUID
	CorrelationID uuid.UUID
}

func (q *GetPerson) GetCorrelationID() uuid.UUID {
	if q == nil {
		return uuid.Nil
	}
	return q.CorrelationID
}

type GetPersons struct {
	mediator.Returns[[]*person.Person]
	CorrelationID uuid.UUID
}

func (q *GetPersons) GetCorrelationID() uuid.UUID {
	if q == nil {
		return uuid.Nil
	}
	return q.CorrelationID
}

type GetSocialMediaAccounts struct {
	mediator.Returns[[]*person.SocialMediaAccount]
	CorrelationID uuid.UUID
}

func (q *GetSocialMediaAccounts) GetCorrelationID() uuid.UUID {
	if q == nil {
		return uuid.Nil
	}
	return q.CorrelationID
}

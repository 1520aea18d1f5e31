package commands

import (
	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/mediator"
)

// AddPerson stores a person with its skills and account associations,
// creating any embedded accounts first. It returns the new person id.
type AddPerson struct {
	mediator.Returns[uuid.UUID]
	CorrelationID uuid.UUID
	Person        *person.Person
}

func (r *AddPerson) GetCorrelationID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.CorrelationID
}

// AddSocialMediaAccount stages a new account in the caller's unit of work and
// returns its id. It does not commit.
type AddSocialMediaAccount struct {
	mediator.Returns[uuid.UUID]
	CorrelationID      uuid.UUID
	SocialMediaAccount *person.SocialMediaAccount
}

func (r *AddSocialMediaAccount) GetCorrelationID() uuid.UUID {
	if r == nil {
		return uuid.Nil
	}
	return r.CorrelationID
}

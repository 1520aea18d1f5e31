package queries

import (
	"context"

	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/mediator"
	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

type getPersonHandler struct {
	persons repos.Repository[person.Person]
	log     *logger.Logger
}

func NewGetPersonHandler(persons repos.Repository[person.Person], baseLog *logger.Logger) mediator.Handler[*GetPerson, *person.Person] {
	return &getPersonHandler{persons: persons, log: baseLog.With("handler", "GetPersonHandler")}
}

func (h *getPersonHandler) Handle(ctx context.Context, q *GetPerson) (*person.Person, error) {
	if q == nil {
		return nil, apperrors.InvalidArgument("query cannot be nil")
	}
	log := h.log.WithContext(ctx)
	log.Info("Getting person", "person_id", q.PersonID)

	p, err := h.persons.GetByID(ctx, q.PersonID)
	if err != nil {
		log.Error("Getting person failed", "person_id", q.PersonID, "error", err)
		return nil, err
	}
	return p, nil
}

type getPersonsHandler struct {
	persons repos.Repository[person.Person]
	log     *logger.Logger
}

func NewGetPersonsHandler(persons repos.Repository[person.Person], baseLog *logger.Logger) mediator.Handler[*GetPersons, []*person.Person] {
	return &getPersonsHandler{persons: persons, log: baseLog.With("handler", "GetPersonsHandler")}
}

func (h *getPersonsHandler) Handle(ctx context.Context, q *GetPersons) ([]*person.Person, error) {
	if q == nil {
		return nil, apperrors.InvalidArgument("query cannot be nil")
	}
	log := h.log.WithContext(ctx)
	log.Info("Getting persons")

	all, err := h.persons.GetAll(ctx)
	if err != nil {
		log.Error("Getting persons failed", "error", err)
		return nil, err
	}
	return all, nil
}

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/http/response"
	"github.com/yungbote/personservice-backend/internal/mapping"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
	"github.com/yungbote/personservice-backend/internal/services/commands"
	"github.com/yungbote/personservice-backend/internal/services/queries"
	"github.com/yungbote/personservice-backend/internal/types"
	"github.com/yungbote/personservice-backend/internal/validation"
)

const msgNoPersons = "No person was found."

type PersonHandler struct {
	sender mediator.Sender
	log    *logger.Logger
}

func NewPersonHandler(sender mediator.Sender, baseLog *logger.Logger) *PersonHandler {
	return &PersonHandler{sender: sender, log: baseLog.With("handler", "PersonHandler")}
}

// POST /api/persons
func (ph *PersonHandler) AddPerson(c *gin.Context) {
	ctx := c.Request.Context()

	var in *types.PersonInput
	if err := json.NewDecoder(c.Request.Body).Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		response.RespondMessage(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if msgs := validation.ValidatePerson(in); len(msgs) > 0 {
		ph.log.WithContext(ctx).Info("Rejected person", "errors", msgs)
		response.RespondMessage(c, http.StatusBadRequest, strings.Join(msgs, ", "))
		return
	}

	id, err := mediator.Send[uuid.UUID](ctx, ph.sender, &commands.AddPerson{
		CorrelationID: ctxutil.CorrelationID(ctx),
		Person:        mapping.ToPersonModel(mapping.FromInput(in)),
	})
	if err != nil {
		response.RespondError(c, ph.log, err)
		return
	}
	response.RespondOK(c, id)
}

// GET /api/persons
func (ph *PersonHandler) GetPersons(c *gin.Context) {
	ctx := c.Request.Context()
	all, err := mediator.Send[[]*person.Person](ctx, ph.sender, &queries.GetPersons{
		CorrelationID: ctxutil.CorrelationID(ctx),
	})
	if err != nil {
		response.RespondError(c, ph.log, err)
		return
	}
	if len(all) == 0 {
		response.RespondMessage(c, http.StatusNotFound, msgNoPersons)
		return
	}
	response.RespondOK(c, mapping.ToPersonDTOs(all))
}

// GET /api/persons/:id
func (ph *PersonHandler) GetPerson(c *gin.Context) {
	p, ok := ph.lookup(c)
	if !ok {
		return
	}
	response.RespondOK(c, mapping.ToPersonDTO(p))
}

// GET /api/persons/:id/modified
func (ph *PersonHandler) GetModifiedPerson(c *gin.Context) {
	p, ok := ph.lookup(c)
	if !ok {
		return
	}
	response.RespondOK(c, mapping.ToModifiedPersonData(p))
}

// lookup resolves :id to a person, writing the error response itself when it
// cannot.
func (ph *PersonHandler) lookup(c *gin.Context) (*person.Person, bool) {
	ctx := c.Request.Context()
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		response.RespondMessage(c, http.StatusBadRequest, fmt.Sprintf("The id %q is not a valid person id.", raw))
		return nil, false
	}
	p, err := mediator.Send[*person.Person](ctx, ph.sender, &queries.GetPerson{
		PersonID:      id,
		CorrelationID: ctxutil.CorrelationID(ctx),
	})
	if err != nil {
		response.RespondError(c, ph.log, err)
		return nil, false
	}
	if p == nil {
		response.RespondMessage(c, http.StatusNotFound, fmt.Sprintf("No person was found for the id: %s.", id))
		return nil, false
	}
	return p, true
}

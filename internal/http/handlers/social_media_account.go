package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/http/response"
	"github.com/yungbote/personservice-backend/internal/mapping"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
	"github.com/yungbote/personservice-backend/internal/services/queries"
)

type SocialMediaAccountHandler struct {
	sender mediator.Sender
	log    *logger.Logger
}

func NewSocialMediaAccountHandler(sender mediator.Sender, baseLog *logger.Logger) *SocialMediaAccountHandler {
	return &SocialMediaAccountHandler{sender: sender, log: baseLog.With("handler", "SocialMediaAccountHandler")}
}

// GET /api/social-media-accounts
func (sh *SocialMediaAccountHandler) GetSocialMediaAccounts(c *gin.Context) {
	ctx := c.Request.Context()
	all, err := mediator.Send[[]*person.SocialMediaAccount](ctx, sh.sender, &queries.GetSocialMediaAccounts{
		CorrelationID: ctxutil.CorrelationID(ctx),
	})
	if err != nil {
		response.RespondError(c, sh.log, err)
		return
	}
	if len(all) == 0 {
		response.RespondMessage(c, http.StatusNotFound, "No social media account was found.")
		return
	}
	response.RespondOK(c, mapping.ToSocialMediaAccountDTOs(all))
}

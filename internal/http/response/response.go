package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/personservice-backend/internal/platform/apierr"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondMessage writes msg as a bare JSON string.
func RespondMessage(c *gin.Context, status int, msg string) {
	c.JSON(status, msg)
}

// RespondError maps err to a status. Invalid arguments and misses carry their
// message; cancellations and internal faults are sent without a body.
func RespondError(c *gin.Context, log *logger.Logger, err error) {
	ae := apierr.FromError(err)
	if ae == nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	switch ae.Status {
	case http.StatusBadRequest, http.StatusNotFound:
		RespondMessage(c, ae.Status, ae.Error())
	case http.StatusInternalServerError:
		if log != nil {
			log.WithContext(c.Request.Context()).Error("Request failed", "path", c.FullPath(), "error", err)
		}
		c.Status(ae.Status)
	default:
		c.Status(ae.Status)
	}
}

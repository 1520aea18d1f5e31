package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
)

var DefaultAllowedOrigins = []string{"http://localhost:4200"}

func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultAllowedOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", ctxutil.CorrelationIDHeader},
		ExposeHeaders: []string{ctxutil.CorrelationIDHeader},
	})
}

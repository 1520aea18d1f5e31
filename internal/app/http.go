package app

import (
	apphttp "github.com/yungbote/personservice-backend/internal/http"
	"github.com/yungbote/personservice-backend/internal/observability"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

func wireServer(cfg Config, log *logger.Logger, handlers Handlers, metrics *observability.Metrics) *apphttp.Server {
	return apphttp.NewServer(cfg.HTTP.Addr, apphttp.RouterConfig{
		Log:                       log,
		Metrics:                   metrics,
		ServiceName:               serviceName,
		AllowedOrigins:            cfg.CORS.AllowedOrigins,
		PersonHandler:             handlers.Person,
		SocialMediaAccountHandler: handlers.SocialMediaAccount,
		HealthHandler:             handlers.Health,
	})
}

package http

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/yungbote/personservice-backend/internal/http/handlers"
	httpMW "github.com/yungbote/personservice-backend/internal/http/middleware"
	"github.com/yungbote/personservice-backend/internal/observability"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log            *logger.Logger
	Metrics        *observability.Metrics
	ServiceName    string
	AllowedOrigins []string

	PersonHandler             *httpH.PersonHandler
	SocialMediaAccountHandler *httpH.SocialMediaAccountHandler
	HealthHandler             *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "personservice"
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(otelgin.Middleware(serviceName))
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.AttachCorrelationID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.Metrics(cfg.Metrics))
	r.Use(httpMW.CORS(cfg.AllowedOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
		r.GET("/readyz", cfg.HealthHandler.Ready)
	}

	// Metrics
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		if cfg.PersonHandler != nil {
			api.POST("/persons", cfg.PersonHandler.AddPerson)
			api.GET("/persons", cfg.PersonHandler.GetPersons)
			api.GET("/persons/:id", cfg.PersonHandler.GetPerson)
			api.GET("/persons/:id/modified", cfg.PersonHandler.GetModifiedPerson)
		}

		if cfg.SocialMediaAccountHandler != nil {
			api.GET("/social-media-accounts", cfg.SocialMediaAccountHandler.GetSocialMediaAccounts)
		}
	}

	return r
}

package app

import (
	"gorm.io/gorm"

	httpH "github.com/yungbote/personservice-backend/internal/http/handlers"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

type Handlers struct {
	Person             *httpH.PersonHandler
	SocialMediaAccount *httpH.SocialMediaAccountHandler
	Health             *httpH.HealthHandler
}

func wireHandlers(db *gorm.DB, log *logger.Logger, m *mediator.Mediator) Handlers {
	log.Info("Wiring handlers...")
	var pinger httpH.Pinger
	if sqlDB, err := db.DB(); err == nil {
		pinger = sqlDB
	} else {
		log.Warn("No sql.DB for readiness checks", "error", err)
	}
	return Handlers{
		Person:             httpH.NewPersonHandler(m, log),
		SocialMediaAccount: httpH.NewSocialMediaAccountHandler(m, log),
		Health:             httpH.NewHealthHandler(pinger),
	}
}

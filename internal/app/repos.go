package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

type Repos struct {
	Person             repos.PersonRepo
	SocialMediaAccount repos.SocialMediaAccountRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Person:             repos.NewPersonRepo(db, log),
		SocialMediaAccount: repos.NewSocialMediaAccountRepo(db, log),
	}
}

package db

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/personservice-backend/internal/domain/person"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(person.Models()...)
}

// Seed inserts the reference social media accounts. Existing rows are kept.
func Seed(db *gorm.DB) error {
	return db.Clauses(clause.OnConflict{DoNothing: true}).
		Create(person.SeedSocialMediaAccounts()).Error
}

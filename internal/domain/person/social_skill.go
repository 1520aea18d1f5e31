package person

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialSkill struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Name     string    `gorm:"not null;column:name" json:"name"`
	PersonID uuid.UUID `gorm:"type:uuid;not null;index;column:person_id" json:"person_id"`
}

func (SocialSkill) TableName() string { return "social_skills" }

func (s *SocialSkill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

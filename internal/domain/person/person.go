package person

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Person owns its social skills and references shared social media accounts
// through PersonSocialMediaAccount rows. Both collections are populated only
// when the caller eager-loads them.
type Person struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	FirstName string    `gorm:"not null;column:first_name" json:"first_name"`
	LastName  string    `gorm:"not null;column:last_name" json:"last_name"`

	SocialSkills              []*SocialSkill              `gorm:"foreignKey:PersonID;references:ID;constraint:OnDelete:CASCADE" json:"social_skills,omitempty"`
	PersonSocialMediaAccounts []*PersonSocialMediaAccount `gorm:"foreignKey:PersonID;references:ID;constraint:OnDelete:CASCADE" json:"person_social_media_accounts,omitempty"`
}

func (Person) TableName() string { return "persons" }

func (p *Person) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

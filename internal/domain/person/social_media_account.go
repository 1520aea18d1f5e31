package person

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SocialMediaAccount struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;column:id" json:"id"`
	Type string    `gorm:"not null;column:type" json:"type"`
}

func (SocialMediaAccount) TableName() string { return "social_media_accounts" }

func (a *SocialMediaAccount) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// Seeded account types, keyed by their fixed ids.
var (
	FacebookAccountID = uuid.MustParse("7425e42b-09a2-42c1-9f58-0ede8ff036de")
	LinkedInAccountID = uuid.MustParse("8284d5e8-86f9-453f-a0cd-38d2500734c8")
	TwitterAccountID  = uuid.MustParse("ee49d702-4b3d-4892-9889-0e787627cfa1")
)

func SeedSocialMediaAccounts() []*SocialMediaAccount {
	return []*SocialMediaAccount{
		{ID: FacebookAccountID, Type: "Facebook"},
		{ID: LinkedInAccountID, Type: "LinkedIn"},
		{ID: TwitterAccountID, Type: "Twitter"},
	}
}

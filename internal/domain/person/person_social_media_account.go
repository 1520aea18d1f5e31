package person

import "github.com/google/uuid"

// PersonSocialMediaAccount is the junction between a person and a shared
// account, carrying the person's address on that account.
//
// A zero SocialMediaAccountID together with a non-nil SocialMediaAccount marks
// an account that does not exist yet and must be created before the person is
// staged.
type PersonSocialMediaAccount struct {
	PersonID             uuid.UUID `gorm:"type:uuid;primaryKey;column:person_id" json:"person_id"`
	SocialMediaAccountID uuid.UUID `gorm:"type:uuid;primaryKey;column:social_media_account_id" json:"social_media_account_id"`
	Address              string    `gorm:"not null;column:address" json:"address"`

	SocialMediaAccount *SocialMediaAccount `gorm:"foreignKey:SocialMediaAccountID;references:ID;constraint:OnDelete:CASCADE" json:"social_media_account,omitempty"`
}

func (PersonSocialMediaAccount) TableName() string { return "person_social_media_accounts" }

// NeedsAccount reports whether the referenced account is not yet known to exist.
func (p *PersonSocialMediaAccount) NeedsAccount() bool {
	return p != nil && p.SocialMediaAccountID == uuid.Nil
}

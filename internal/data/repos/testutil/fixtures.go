package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/personservice-backend/internal/domain/person"
)

// NewPerson builds an unsaved person with one skill and a Twitter account.
func NewPerson(first, last string) *person.Person {
	return &person.Person{
		FirstName:    first,
		LastName:     last,
		SocialSkills: []*person.SocialSkill{{Name: "Listening"}},
		PersonSocialMediaAccounts: []*person.PersonSocialMediaAccount{
			{SocialMediaAccountID: person.TwitterAccountID, Address: "@" + first},
		},
	}
}

func SeedPerson(tb testing.TB, ctx context.Context, tx *gorm.DB, first, last string) *person.Person {
	tb.Helper()
	p := NewPerson(first, last)
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed person: %v", err)
	}
	return p
}

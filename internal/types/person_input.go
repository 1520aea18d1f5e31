package types

import "github.com/google/uuid"

// PersonInput is the decoded POST body. Pointers and nil slices keep "absent"
// distinguishable from "empty" for validation.
type PersonInput struct {
	FirstName           *string                          `json:"firstName"`
	LastName            *string                          `json:"lastName"`
	SocialSkills        []*string                        `json:"socialSkills"`
	SocialMediaAccounts []*PersonSocialMediaAccountInput `json:"socialMediaAccounts"`
}

type PersonSocialMediaAccountInput struct {
	SocialMediaAccountID uuid.UUID `json:"socialMediaAccountId"`
	Type                 *string   `json:"type"`
	Address              *string   `json:"address"`
}

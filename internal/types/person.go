package types

import "github.com/google/uuid"

// Person is the transfer shape exchanged over the API.
type Person struct {
	PersonID            uuid.UUID                  `json:"personId"`
	FirstName           string                     `json:"firstName"`
	LastName            string                     `json:"lastName"`
	SocialSkills        []string                   `json:"socialSkills"`
	SocialMediaAccounts []PersonSocialMediaAccount `json:"socialMediaAccounts"`
}

// PersonSocialMediaAccount flattens the junction row together with the
// account type. A zero SocialMediaAccountID asks for a new account of Type.
type PersonSocialMediaAccount struct {
	SocialMediaAccountID uuid.UUID `json:"socialMediaAccountId"`
	Type                 string    `json:"type"`
	Address              string    `json:"address"`
}

type SocialMediaAccount struct {
	SocialMediaAccountID uuid.UUID `json:"socialMediaAccountId"`
	Type                 string    `json:"type"`
}

// ModifiedPersonData carries the name analytics derived from a person.
type ModifiedPersonData struct {
	NumberOfVowels     int    `json:"numberOfVowels"`
	NumberOfConsonants int    `json:"numberOfConsonants"`
	FullName           string `json:"fullName"`
	ReversedName       string `json:"reversedName"`
}

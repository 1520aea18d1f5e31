package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/yungbote/personservice-backend/internal/types"
)

var lettersPattern = regexp.MustCompile(`^[a-zA-Z ]*$`)

const (
	minNameLength = 3
	maxNameLength = 100
)

// ValidatePerson evaluates every rule and returns the messages of those that
// failed, in rule order. An empty result means the input is valid.
func ValidatePerson(in *types.PersonInput) []string {
	if in == nil {
		return []string{"Person cannot be null"}
	}
	var msgs []string
	msgs = append(msgs, validateName("First name", in.FirstName)...)
	msgs = append(msgs, validateName("Last name", in.LastName)...)
	msgs = append(msgs, validateSkills(in.SocialSkills)...)
	msgs = append(msgs, validateAccounts(in.SocialMediaAccounts)...)
	return msgs
}

func validateName(field string, v *string) []string {
	var msgs []string
	if v == nil {
		msgs = append(msgs, field+" cannot be null")
	}
	if v == nil || isBlank(*v) {
		msgs = append(msgs, field+" must have a value")
	}
	if v == nil {
		return msgs
	}
	if n := utf8.RuneCountInString(*v); n < minNameLength || n > maxNameLength {
		msgs = append(msgs, field+" must be at least 3 characters long")
	}
	if !lettersPattern.MatchString(*v) {
		msgs = append(msgs, field+" should only be contained of letters")
	}
	return msgs
}

func validateSkills(skills []*string) []string {
	var msgs []string
	if skills == nil {
		msgs = append(msgs, "Social skills cannot be null")
	}
	if len(skills) == 0 {
		return append(msgs, "Social skills cannot be empty")
	}
	for _, s := range skills {
		if s == nil || isBlank(*s) {
			return append(msgs, "All social skills must have a value")
		}
	}
	return msgs
}

func validateAccounts(accounts []*types.PersonSocialMediaAccountInput) []string {
	var msgs []string
	if accounts == nil {
		msgs = append(msgs, "Social media accounts cannot be null")
	}
	if len(accounts) == 0 {
		return append(msgs, "Social media accounts cannot be empty")
	}
	var nilElem, blankType, blankAddress bool
	for _, a := range accounts {
		if a == nil {
			nilElem = true
			continue
		}
		if a.Type == nil || isBlank(*a.Type) {
			blankType = true
		}
		if a.Address == nil || isBlank(*a.Address) {
			blankAddress = true
		}
	}
	if nilElem {
		msgs = append(msgs, "All social media accounts cannot be null")
	}
	if blankType {
		msgs = append(msgs, "Social media account types must have a value")
	}
	if blankAddress {
		msgs = append(msgs, "Social media account addresses must have a value")
	}
	return msgs
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

package mapping

import (
	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/types"
)

// FromInput converts a validated request body into the transfer shape. Nil
// elements are skipped.
func FromInput(in *types.PersonInput) *types.Person {
	if in == nil {
		return nil
	}
	out := &types.Person{
		FirstName:           deref(in.FirstName),
		LastName:            deref(in.LastName),
		SocialSkills:        make([]string, 0, len(in.SocialSkills)),
		SocialMediaAccounts: make([]types.PersonSocialMediaAccount, 0, len(in.SocialMediaAccounts)),
	}
	for _, s := range in.SocialSkills {
		if s != nil {
			out.SocialSkills = append(out.SocialSkills, *s)
		}
	}
	for _, a := range in.SocialMediaAccounts {
		if a == nil {
			continue
		}
		out.SocialMediaAccounts = append(out.SocialMediaAccounts, types.PersonSocialMediaAccount{
			SocialMediaAccountID: a.SocialMediaAccountID,
			Type:                 deref(a.Type),
			Address:              deref(a.Address),
		})
	}
	return out
}

// ToPersonModel builds the persistence graph. Accounts with no id get an
// embedded SocialMediaAccount so they are created before the person.
func ToPersonModel(dto *types.Person) *person.Person {
	if dto == nil {
		return nil
	}
	p := &person.Person{
		ID:                        dto.PersonID,
		FirstName:                 dto.FirstName,
		LastName:                  dto.LastName,
		SocialSkills:              make([]*person.SocialSkill, 0, len(dto.SocialSkills)),
		PersonSocialMediaAccounts: make([]*person.PersonSocialMediaAccount, 0, len(dto.SocialMediaAccounts)),
	}
	for _, name := range dto.SocialSkills {
		p.SocialSkills = append(p.SocialSkills, &person.SocialSkill{Name: name, PersonID: dto.PersonID})
	}
	for _, a := range dto.SocialMediaAccounts {
		assoc := &person.PersonSocialMediaAccount{
			PersonID:             dto.PersonID,
			SocialMediaAccountID: a.SocialMediaAccountID,
			Address:              a.Address,
		}
		if a.SocialMediaAccountID == uuid.Nil {
			assoc.SocialMediaAccount = &person.SocialMediaAccount{Type: a.Type}
		}
		p.PersonSocialMediaAccounts = append(p.PersonSocialMediaAccounts, assoc)
	}
	return p
}

// ToPersonDTO flattens p. Associations without a loaded account keep an empty
// type.
func ToPersonDTO(p *person.Person) types.Person {
	if p == nil {
		return types.Person{}
	}
	dto := types.Person{
		PersonID:            p.ID,
		FirstName:           p.FirstName,
		LastName:            p.LastName,
		SocialSkills:        make([]string, 0, len(p.SocialSkills)),
		SocialMediaAccounts: make([]types.PersonSocialMediaAccount, 0, len(p.PersonSocialMediaAccounts)),
	}
	for _, s := range p.SocialSkills {
		if s != nil {
			dto.SocialSkills = append(dto.SocialSkills, s.Name)
		}
	}
	for _, a := range p.PersonSocialMediaAccounts {
		if a == nil {
			continue
		}
		flat := types.PersonSocialMediaAccount{
			SocialMediaAccountID: a.SocialMediaAccountID,
			Address:              a.Address,
		}
		if a.SocialMediaAccount != nil {
			flat.Type = a.SocialMediaAccount.Type
		}
		dto.SocialMediaAccounts = append(dto.SocialMediaAccounts, flat)
	}
	return dto
}

func ToPersonDTOs(ps []*person.Person) []types.Person {
	out := make([]types.Person, 0, len(ps))
	for _, p := range ps {
		if p != nil {
			out = append(out, ToPersonDTO(p))
		}
	}
	return out
}

func ToSocialMediaAccountDTO(a *person.SocialMediaAccount) types.SocialMediaAccount {
	if a == nil {
		return types.SocialMediaAccount{}
	}
	return types.SocialMediaAccount{SocialMediaAccountID: a.ID, Type: a.Type}
}

func ToSocialMediaAccountDTOs(as []*person.SocialMediaAccount) []types.SocialMediaAccount {
	out := make([]types.SocialMediaAccount, 0, len(as))
	for _, a := range as {
		if a != nil {
			out = append(out, ToSocialMediaAccountDTO(a))
		}
	}
	return out
}

// ToModifiedPersonData derives the name analytics from the full name.
func ToModifiedPersonData(p *person.Person) types.ModifiedPersonData {
	if p == nil {
		return types.ModifiedPersonData{}
	}
	full := FullName(p.FirstName, p.LastName)
	return types.ModifiedPersonData{
		NumberOfVowels:     NumberOfVowels(full),
		NumberOfConsonants: NumberOfConsonants(full),
		FullName:           full,
		ReversedName:       Reverse(full),
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

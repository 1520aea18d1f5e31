package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

type PersonRepo interface {
	Repository[person.Person]
}

type personRepo struct {
	*gormRepo[person.Person]
}

// NewPersonRepo returns a repository whose reads eager-load the skills and the
// account associations together with their accounts.
func NewPersonRepo(db *gorm.DB, baseLog *logger.Logger) PersonRepo {
	return &personRepo{gormRepo: newGormRepo[person.Person](db, baseLog)}
}

// Add inserts the person, its skills and its account associations as plain
// inserts. Referenced accounts must already exist in the session; a repeated
// account on the same person fails on the junction key.
func (pr *personRepo) Add(ctx context.Context, p *person.Person) (*person.Person, error) {
	return pr.add(ctx, p, func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(p).Error; err != nil {
			return err
		}
		skills := make([]*person.SocialSkill, 0, len(p.SocialSkills))
		for _, s := range p.SocialSkills {
			if s != nil {
				s.PersonID = p.ID
				skills = append(skills, s)
			}
		}
		if len(skills) > 0 {
			if err := tx.Omit(clause.Associations).Create(&skills).Error; err != nil {
				return err
			}
		}
		links := make([]*person.PersonSocialMediaAccount, 0, len(p.PersonSocialMediaAccounts))
		for _, a := range p.PersonSocialMediaAccounts {
			if a != nil {
				a.PersonID = p.ID
				links = append(links, a)
			}
		}
		if len(links) > 0 {
			return tx.Omit(clause.Associations).Create(&links).Error
		}
		return nil
	})
}

func (pr *personRepo) GetByID(ctx context.Context, id uuid.UUID) (*person.Person, error) {
	return pr.getByID(ctx, id, withPersonGraph)
}

func (pr *personRepo) GetAll(ctx context.Context) ([]*person.Person, error) {
	return pr.getAll(ctx, withPersonGraph)
}

func withPersonGraph(db *gorm.DB) *gorm.DB {
	return db.
		Preload("PersonSocialMediaAccounts.SocialMediaAccount").
		Preload("SocialSkills")
}

type SocialMediaAccountRepo interface {
	Repository[person.SocialMediaAccount]
}

func NewSocialMediaAccountRepo(db *gorm.DB, baseLog *logger.Logger) SocialMediaAccountRepo {
	return newGormRepo[person.SocialMediaAccount](db, baseLog)
}

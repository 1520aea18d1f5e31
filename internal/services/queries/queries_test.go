package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	redisclient "github.com/yungbote/personservice-backend/internal/clients/redis"
	"github.com/yungbote/personservice-backend/internal/data/repos"
	"github.com/yungbote/personservice-backend/internal/data/repos/testutil"
	"github.com/yungbote/personservice-backend/internal/domain/person"
	"github.com/yungbote/personservice-backend/internal/mediator"
	"github.com/yungbote/personservice-backend/internal/observability"
	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
)

type QueriesSuite struct {
	suite.Suite
	persons  repos.PersonRepo
	accounts repos.SocialMediaAccountRepo
	cache    redisclient.AccountCache
	redis    *miniredis.Miniredis
	m        *mediator.Mediator
	seeded   *person.Person
}

func TestQueriesSuite(t *testing.T) {
	suite.Run(t, new(QueriesSuite))
}

func (s *QueriesSuite) SetupTest() {
	t := s.T()
	db := testutil.SQLite(t)
	log := testutil.Logger(t)
	s.persons = repos.NewPersonRepo(db, log)
	s.accounts = repos.NewSocialMediaAccountRepo(db, log)

	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.redis = mr
	s.cache = redisclient.NewAccountCacheFromClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}), time.Minute, log)
	t.Cleanup(func() {
		_ = s.cache.Close()
		mr.Close()
	})

	s.m = mediator.New(log, mediator.WithScope(repos.Scope(db)))
	Register(s.m, s.persons, s.accounts, s.cache, observability.NewMetrics(), log)

	s.seeded = testutil.SeedPerson(t, context.Background(), db, "John", "Smith")
}

func (s *QueriesSuite) TestGetPersonFound() {
	got, err := mediator.Send[*person.Person](context.Background(), s.m, &GetPerson{PersonID: s.seeded.ID, CorrelationID: uuid.New()})
	s.Require().NoError(err)
	s.Require().NotNil(got)
	s.Equal("John", got.FirstName)
	s.Len(got.SocialSkills, 1)
	s.Require().Len(got.PersonSocialMediaAccounts, 1)
	s.Equal("Twitter", got.PersonSocialMediaAccounts[0].SocialMediaAccount.Type)
}

func (s *QueriesSuite) TestGetPersonMissingReturnsNil() {
	got, err := mediator.Send[*person.Person](context.Background(), s.m, &GetPerson{PersonID: uuid.New()})
	s.Require().NoError(err)
	s.Nil(got)
}

func (s *QueriesSuite) TestGetPersons() {
	all, err := mediator.Send[[]*person.Person](context.Background(), s.m, &GetPersons{})
	s.Require().NoError(err)
	s.Require().Len(all, 1)
	s.Equal(s.seeded.ID, all[0].ID)
}

func (s *QueriesSuite) TestGetSocialMediaAccountsReadsThroughCache() {
	ctx := context.Background()
	_, ok, err := s.cache.Get(ctx)
	s.Require().NoError(err)
	s.False(ok)

	all, err := mediator.Send[[]*person.SocialMediaAccount](ctx, s.m, &GetSocialMediaAccounts{})
	s.Require().NoError(err)
	s.Len(all, 3)

	cached, ok, err := s.cache.Get(ctx)
	s.Require().NoError(err)
	s.Require().True(ok)
	s.ElementsMatch(all, cached)

	// A hit is served without touching the database.
	s.Require().NoError(s.cache.Set(ctx, []*person.SocialMediaAccount{{ID: uuid.New(), Type: "Cached"}}))
	hit, err := mediator.Send[[]*person.SocialMediaAccount](ctx, s.m, &GetSocialMediaAccounts{})
	s.Require().NoError(err)
	s.Require().Len(hit, 1)
	s.Equal("Cached", hit[0].Type)
}

func (s *QueriesSuite) TestGetSocialMediaAccountsIgnoresCacheFaults() {
	s.redis.Close()
	all, err := mediator.Send[[]*person.SocialMediaAccount](context.Background(), s.m, &GetSocialMediaAccounts{})
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *QueriesSuite) TestCancelledQueries() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := mediator.Send[*person.Person](ctx, s.m, &GetPerson{PersonID: s.seeded.ID})
	s.True(errors.Is(err, apperrors.ErrCancelled), "got %v", err)
	_, err = mediator.Send[[]*person.Person](ctx, s.m, &GetPersons{})
	s.True(errors.Is(err, apperrors.ErrCancelled), "got %v", err)
}

func TestQueryHandlersRejectNil(t *testing.T) {
	log := testutil.Logger(t)
	_, err := NewGetPersonHandler(nil, log).Handle(context.Background(), nil)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
	_, err = NewGetPersonsHandler(nil, log).Handle(context.Background(), nil)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
	_, err = NewGetSocialMediaAccountsHandler(nil, nil, nil, log).Handle(context.Background(), nil)
	require.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
}

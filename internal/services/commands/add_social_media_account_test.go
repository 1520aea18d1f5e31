package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/personservice-backend/internal/domain/person"
	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

func TestAddSocialMediaAccountAddsWithoutCommit(t *testing.T) {
	accounts := &fakeRepo[person.SocialMediaAccount]{assignID: func(a *person.SocialMediaAccount) uuid.UUID {
		a.ID = uuid.New()
		return a.ID
	}}
	h := NewAddSocialMediaAccountHandler(accounts, logger.Nop())

	acc := &person.SocialMediaAccount{Type: "Mastodon"}
	id, err := h.Handle(context.Background(), &AddSocialMediaAccount{SocialMediaAccount: acc})
	require.NoError(t, err)
	assert.Equal(t, acc.ID, id)
	assert.Len(t, accounts.added, 1)
	assert.Zero(t, accounts.commits)
}

func TestAddSocialMediaAccountRejectsNil(t *testing.T) {
	h := NewAddSocialMediaAccountHandler(&fakeRepo[person.SocialMediaAccount]{}, logger.Nop())
	for _, req := range []*AddSocialMediaAccount{nil, {}} {
		_, err := h.Handle(context.Background(), req)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
	}
}

func TestAddSocialMediaAccountPropagatesAddError(t *testing.T) {
	boom := errors.New("boom")
	h := NewAddSocialMediaAccountHandler(&fakeRepo[person.SocialMediaAccount]{addErr: boom}, logger.Nop())
	_, err := h.Handle(context.Background(), &AddSocialMediaAccount{SocialMediaAccount: &person.SocialMediaAccount{Type: "x"}})
	assert.Same(t, boom, err)
}

package apierr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
)

func TestFromError(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid", apperrors.InvalidArgument("bad"), http.StatusBadRequest, "invalid_argument"},
		{"not found", fmt.Errorf("lookup: %w", apperrors.ErrNotFound), http.StatusNotFound, "not_found"},
		{"cancelled", apperrors.FromContext(ctx, nil), StatusClientClosedRequest, "cancelled"},
		{"operation", apperrors.Operation(context.Background(), "Add", "Person", "", errors.New("boom")), http.StatusInternalServerError, "internal"},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, "internal"},
		{"explicit", New(http.StatusConflict, "conflict", errors.New("dup")), http.StatusConflict, "conflict"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ae := FromError(tc.err)
			if assert.NotNil(t, ae) {
				assert.Equal(t, tc.status, ae.Status)
				assert.Equal(t, tc.code, ae.Code)
			}
		})
	}
	assert.Nil(t, FromError(nil))
}

func TestErrorString(t *testing.T) {
	assert.Equal(t, "", (*Error)(nil).Error())
	assert.Equal(t, "boom", New(500, "internal", errors.New("boom")).Error())
	assert.Equal(t, "internal", New(500, "internal", nil).Error())
	assert.Equal(t, "api error (418)", New(418, "", nil).Error())
	assert.Equal(t, "api error", (&Error{}).Error())
}

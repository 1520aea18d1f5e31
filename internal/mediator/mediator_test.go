package mediator

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/personservice-backend/internal/observability"
	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

type echo struct {
	Returns[string]
	CorrelationID uuid.UUID
	Text          string
}

func (e *echo) GetCorrelationID() uuid.UUID {
	if e == nil {
		return uuid.Nil
	}
	return e.CorrelationID
}

type count struct {
	Returns[int]
	N int
}

type outer struct {
	Returns[string]
	Inner []string
}

func TestSendRoutesByRequestType(t *testing.T) {
	m := New(logger.Nop())
	Register[*echo, string](m, HandlerFunc[*echo, string](func(ctx context.Context, req *echo) (string, error) {
		return "echo:" + req.Text, nil
	}))
	Register[*count, int](m, HandlerFunc[*count, int](func(ctx context.Context, req *count) (int, error) {
		return req.N * 2, nil
	}))

	s, err := Send[string](context.Background(), m, &echo{Text: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "echo:hi", s)

	n, err := Send[int](context.Background(), m, &count{N: 21})
	require.NoError(t, err)
	assert.Equal(t, 42, n)
}

func TestSendUnknownRequestType(t *testing.T) {
	m := New(logger.Nop())
	_, err := Send[string](context.Background(), m, &echo{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHandler))
	assert.False(t, errors.Is(err, apperrors.ErrInvalidArgument))
	assert.Equal(t, "error", Outcome(err))
}

func TestSendNilRequest(t *testing.T) {
	m := New(logger.Nop())
	_, err := Send[string](context.Background(), m, nil)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidArgument))
}

func TestRegisterTwicePanics(t *testing.T) {
	m := New(logger.Nop())
	h := HandlerFunc[*count, int](func(ctx context.Context, req *count) (int, error) { return 0, nil })
	Register[*count, int](m, h)
	assert.Panics(t, func() { Register[*count, int](m, h) })
}

func TestHandlerErrorReturnedUnchanged(t *testing.T) {
	boom := errors.New("boom")
	m := New(logger.Nop())
	Register[*count, int](m, HandlerFunc[*count, int](func(ctx context.Context, req *count) (int, error) {
		return 0, boom
	}))
	_, err := Send[int](context.Background(), m, &count{})
	assert.Same(t, boom, err)
}

func TestNestedSendSharesScope(t *testing.T) {
	type scopeKey struct{}
	opened := 0
	closed := 0
	scope := func(ctx context.Context) (context.Context, func() error) {
		if ctx.Value(scopeKey{}) != nil {
			return ctx, func() error { return nil }
		}
		opened++
		return context.WithValue(ctx, scopeKey{}, opened), func() error { closed++; return nil }
	}

	m := New(logger.Nop(), WithScope(scope))
	Register[*echo, string](m, HandlerFunc[*echo, string](func(ctx context.Context, req *echo) (string, error) {
		return req.Text, nil
	}))
	Register[*outer, string](m, HandlerFunc[*outer, string](func(ctx context.Context, req *outer) (string, error) {
		out := ""
		for _, s := range req.Inner {
			r, err := Send[string](ctx, m, &echo{Text: s})
			if err != nil {
				return "", err
			}
			out += r
		}
		return out, nil
	}))

	got, err := Send[string](context.Background(), m, &outer{Inner: []string{"a", "b", "c"}})
	require.NoError(t, err)
	assert.Equal(t, "abc", got)
	assert.Equal(t, 1, opened)
	assert.Equal(t, 1, closed)
}

func TestDispatchPropagatesCorrelationID(t *testing.T) {
	id := uuid.New()
	var seen uuid.UUID
	m := New(logger.Nop())
	Register[*echo, string](m, HandlerFunc[*echo, string](func(ctx context.Context, req *echo) (string, error) {
		seen = ctxutil.CorrelationID(ctx)
		return "", nil
	}))
	_, err := Send[string](context.Background(), m, &echo{CorrelationID: id})
	require.NoError(t, err)
	assert.Equal(t, id, seen)
}

func TestBehaviorsWrapInOrder(t *testing.T) {
	var trail []string
	mk := func(tag string) Behavior {
		return func(ctx context.Context, name string, req any, next Next) (any, error) {
			trail = append(trail, tag+">"+name)
			out, err := next(ctx)
			trail = append(trail, tag+"<")
			return out, err
		}
	}
	m := New(logger.Nop(), WithBehaviors(mk("a"), mk("b"), LoggingBehavior(logger.Nop())))
	Register[*count, int](m, HandlerFunc[*count, int](func(ctx context.Context, req *count) (int, error) {
		trail = append(trail, "handler")
		return 1, nil
	}))
	_, err := Send[int](context.Background(), m, &count{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a>count", "b>count", "handler", "b<", "a<"}, trail)
}

func TestDispatchRecordsMetrics(t *testing.T) {
	metrics := observability.NewMetrics()
	m := New(logger.Nop(), WithMetrics(metrics))
	Register[*count, int](m, HandlerFunc[*count, int](func(ctx context.Context, req *count) (int, error) {
		if req.N < 0 {
			return 0, apperrors.InvalidArgument("negative")
		}
		return req.N, nil
	}))
	_, _ = Send[int](context.Background(), m, &count{N: 1})
	_, _ = Send[int](context.Background(), m, &count{N: -1})

	n, err := testutil.GatherAndCount(metrics.Registry(), "person_mediator_requests_total")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "cancelled", Outcome(apperrors.FromContext(context.Background(), context.Canceled)))
	assert.Equal(t, "invalid_argument", Outcome(apperrors.InvalidArgument("x")))
	assert.Equal(t, "error", Outcome(errors.New("x")))
}

package mediator

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/personservice-backend/internal/observability"
	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
	"github.com/yungbote/personservice-backend/internal/platform/ctxutil"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

// ErrNoHandler is returned for request types nothing was registered for. It
// is a wiring fault, not a caller error.
var ErrNoHandler = errors.New("no handler registered")

// Request is implemented by request values answered with a Res. Request types
// embed Returns[Res] to declare it.
type Request[Res any] interface {
	returns(Res)
}

type Returns[Res any] struct{}

func (Returns[Res]) returns(Res) {}

// Correlated requests carry the caller's correlation id.
type Correlated interface {
	GetCorrelationID() uuid.UUID
}

type Handler[Req Request[Res], Res any] interface {
	Handle(ctx context.Context, req Req) (Res, error)
}

type HandlerFunc[Req Request[Res], Res any] func(ctx context.Context, req Req) (Res, error)

func (f HandlerFunc[Req, Res]) Handle(ctx context.Context, req Req) (Res, error) { return f(ctx, req) }

// Sender is the dispatch capability handed to handlers that issue nested
// requests.
type Sender interface {
	Dispatch(ctx context.Context, req any) (any, error)
}

// Scope opens a unit of work for a top-level request. It returns the ctx to
// dispatch with and a func run once the handler has returned.
type Scope func(ctx context.Context) (context.Context, func() error)

type Next func(ctx context.Context) (any, error)

// Behavior wraps every handler invocation, outermost first.
type Behavior func(ctx context.Context, name string, req any, next Next) (any, error)

type handlerFunc func(ctx context.Context, req any) (any, error)

type Mediator struct {
	mu        sync.RWMutex
	handlers  map[reflect.Type]handlerFunc
	behaviors []Behavior
	scope     Scope
	metrics   *observability.Metrics
	tracer    trace.Tracer
	log       *logger.Logger
}

type Option func(*Mediator)

func WithScope(s Scope) Option { return func(m *Mediator) { m.scope = s } }

func WithMetrics(metrics *observability.Metrics) Option {
	return func(m *Mediator) { m.metrics = metrics }
}

func WithTracer(t trace.Tracer) Option { return func(m *Mediator) { m.tracer = t } }

func WithBehaviors(b ...Behavior) Option {
	return func(m *Mediator) { m.behaviors = append(m.behaviors, b...) }
}

func New(baseLog *logger.Logger, opts ...Option) *Mediator {
	m := &Mediator{
		handlers: map[reflect.Type]handlerFunc{},
		log:      baseLog.With("service", "Mediator"),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.tracer == nil {
		m.tracer = observability.Tracer()
	}
	return m
}

// Register binds h to the request type Req. Registering a type twice panics.
func Register[Req Request[Res], Res any](m *Mediator, h Handler[Req, Res]) {
	t := reflect.TypeOf((*Req)(nil)).Elem()
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, dup := m.handlers[t]; dup {
		panic(fmt.Sprintf("mediator: handler already registered for %s", t))
	}
	m.handlers[t] = func(ctx context.Context, req any) (any, error) {
		return h.Handle(ctx, req.(Req))
	}
	m.log.Debug("Registered handler", "request", requestName(t))
}

// Send dispatches req through s and awaits its handler.
func Send[Res any](ctx context.Context, s Sender, req Request[Res]) (Res, error) {
	var zero Res
	if s == nil {
		return zero, apperrors.InvalidArgument("sender cannot be nil")
	}
	out, err := s.Dispatch(ctx, req)
	if res, ok := out.(Res); ok {
		return res, err
	}
	return zero, err
}

func (m *Mediator) Dispatch(ctx context.Context, req any) (any, error) {
	if req == nil {
		return nil, apperrors.InvalidArgument("request cannot be nil")
	}
	t := reflect.TypeOf(req)
	name := requestName(t)

	m.mu.RLock()
	h, ok := m.handlers[t]
	m.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNoHandler, name)
	}

	if c, ok := req.(Correlated); ok && ctxutil.CorrelationID(ctx) == uuid.Nil {
		ctx = ctxutil.WithCorrelationID(ctx, c.GetCorrelationID())
	}

	ctx, span := m.tracer.Start(ctx, "mediator.Send "+name, trace.WithAttributes(
		attribute.String("request", name),
		attribute.String("correlation_id", ctxutil.CorrelationID(ctx).String()),
	))
	defer span.End()

	if m.scope != nil {
		var end func() error
		ctx, end = m.scope(ctx)
		defer func() {
			if err := end(); err != nil {
				m.log.WithContext(ctx).Warn("Closing unit of work failed", "request", name, "error", err)
			}
		}()
	}

	start := time.Now()
	out, err := m.chain(name, req, h)(ctx)
	m.metrics.ObserveMediator(name, Outcome(err), time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, Outcome(err))
	}
	return out, err
}

func (m *Mediator) chain(name string, req any, h handlerFunc) Next {
	next := Next(func(ctx context.Context) (any, error) { return h(ctx, req) })
	for i := len(m.behaviors) - 1; i >= 0; i-- {
		b, inner := m.behaviors[i], next
		next = func(ctx context.Context) (any, error) { return b(ctx, name, req, inner) }
	}
	return next
}

// Outcome is the metrics label for err.
func Outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case apperrors.Is(err, apperrors.ErrCancelled):
		return "cancelled"
	case apperrors.Is(err, apperrors.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "error"
	}
}

func requestName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

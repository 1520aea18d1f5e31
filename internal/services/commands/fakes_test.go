package commands

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/yungbote/personservice-backend/internal/domain/person"
)

type fakeRepo[T any] struct {
	mu        sync.Mutex
	added     []*T
	commits   int
	addErr    error
	commitErr error
	assignID  func(*T) uuid.UUID
}

func (r *fakeRepo[T]) Add(ctx context.Context, entity *T) (*T, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.addErr != nil {
		return nil, r.addErr
	}
	if r.assignID != nil {
		r.assignID(entity)
	}
	r.added = append(r.added, entity)
	return entity, nil
}

func (r *fakeRepo[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) { return nil, nil }

func (r *fakeRepo[T]) GetAll(ctx context.Context) ([]*T, error) { return nil, nil }

func (r *fakeRepo[T]) Commit(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.commits++
	return r.commitErr
}

func newPersonRepo() *fakeRepo[person.Person] {
	return &fakeRepo[person.Person]{assignID: func(p *person.Person) uuid.UUID {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		return p.ID
	}}
}

// recordingSender answers AddSocialMediaAccount with fresh ids and keeps every
// request it saw.
type recordingSender struct {
	sent []any
	ids  []uuid.UUID
	err  error
}

func (s *recordingSender) Dispatch(ctx context.Context, req any) (any, error) {
	s.sent = append(s.sent, req)
	if s.err != nil {
		return uuid.Nil, s.err
	}
	id := uuid.New()
	s.ids = append(s.ids, id)
	return id, nil
}

type fakeInvalidator struct{ calls int }

func (f *fakeInvalidator) Invalidate(ctx context.Context) error {
	f.calls++
	return nil
}

package repos

import (
	"context"
	"errors"
	"sync"

	"gorm.io/gorm"
)

var ErrNoSession = errors.New("no unit of work in context")

// Session is a request-scoped unit of work. The first write opens a
// transaction; reads go through that transaction while it is open so staged
// rows are visible, and through the pool otherwise.
type Session struct {
	mu sync.Mutex
	db *gorm.DB
	tx *gorm.DB
}

func NewSession(db *gorm.DB) *Session {
	return &Session{db: db}
}

type sessionKey struct{}

func WithSession(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func SessionFrom(ctx context.Context) *Session {
	if ctx == nil {
		return nil
	}
	s, _ := ctx.Value(sessionKey{}).(*Session)
	return s
}

// Write runs fn against the session transaction, opening it if needed.
func (s *Session) Write(ctx context.Context, fn func(tx *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx == nil {
		tx := s.db.WithContext(ctx).Begin()
		if tx.Error != nil {
			return tx.Error
		}
		s.tx = tx
	}
	return fn(s.tx.WithContext(ctx))
}

// Read runs fn against the open transaction, or the pool when none is open.
func (s *Session) Read(ctx context.Context, fn func(db *gorm.DB) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx != nil {
		return fn(s.tx.WithContext(ctx))
	}
	return fn(s.db.WithContext(ctx))
}

// Pending reports whether staged changes await Commit.
func (s *Session) Pending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tx != nil
}

// Commit persists everything staged so far. Committing with nothing staged is
// a no-op.
func (s *Session) Commit(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	return tx.Commit().Error
}

// Rollback discards staged changes.
func (s *Session) Rollback() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.tx == nil {
		return nil
	}
	tx := s.tx
	s.tx = nil
	err := tx.Rollback().Error
	if errors.Is(err, gorm.ErrInvalidTransaction) {
		return nil
	}
	return err
}

// Scope opens a Session for ctx unless one is already present. The returned
// func rolls back whatever was left uncommitted.
func Scope(db *gorm.DB) func(ctx context.Context) (context.Context, func() error) {
	return func(ctx context.Context) (context.Context, func() error) {
		if SessionFrom(ctx) != nil {
			return ctx, func() error { return nil }
		}
		s := NewSession(db)
		return WithSession(ctx, s), s.Rollback
	}
}

package repos

import (
	"context"
	"errors"
	"reflect"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apperrors "github.com/yungbote/personservice-backend/internal/pkg/errors"
	"github.com/yungbote/personservice-backend/internal/platform/logger"
)

// Repository stages writes into the Session carried by ctx and reads through
// it. GetByID returns (nil, nil) when no row matches.
type Repository[T any] interface {
	Add(ctx context.Context, entity *T) (*T, error)
	GetByID(ctx context.Context, id uuid.UUID) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	Commit(ctx context.Context) error
}

type gormRepo[T any] struct {
	db     *gorm.DB
	log    *logger.Logger
	entity string
}

func NewRepository[T any](db *gorm.DB, baseLog *logger.Logger) Repository[T] {
	return newGormRepo[T](db, baseLog)
}

func newGormRepo[T any](db *gorm.DB, baseLog *logger.Logger) *gormRepo[T] {
	entity := reflect.TypeOf((*T)(nil)).Elem().Name()
	return &gormRepo[T]{
		db:     db,
		log:    baseLog.With("repo", entity+"Repo"),
		entity: entity,
	}
}

func (r *gormRepo[T]) Add(ctx context.Context, entity *T) (*T, error) {
	return r.add(ctx, entity, func(tx *gorm.DB) error {
		return tx.Create(entity).Error
	})
}

// add stages entity with write inside the ctx session.
func (r *gormRepo[T]) add(ctx context.Context, entity *T, write func(tx *gorm.DB) error) (*T, error) {
	if entity == nil {
		return nil, apperrors.InvalidArgument("%s to add cannot be nil", r.entity)
	}
	if err := apperrors.FromContext(ctx, nil); err != nil {
		return nil, err
	}
	s := SessionFrom(ctx)
	if s == nil {
		return nil, apperrors.Operation(ctx, "Add", r.entity, "", ErrNoSession)
	}
	if err := s.Write(ctx, write); err != nil {
		r.log.WithContext(ctx).Warn("Add failed", "entity", r.entity, "error", err)
		return nil, apperrors.Operation(ctx, "Add", r.entity, "", err)
	}
	if err := apperrors.FromContext(ctx, nil); err != nil {
		return nil, err
	}
	return entity, nil
}

func (r *gormRepo[T]) GetByID(ctx context.Context, id uuid.UUID) (*T, error) {
	return r.getByID(ctx, id, nil)
}

func (r *gormRepo[T]) GetAll(ctx context.Context) ([]*T, error) {
	return r.getAll(ctx, nil)
}

func (r *gormRepo[T]) Commit(ctx context.Context) error {
	if err := apperrors.FromContext(ctx, nil); err != nil {
		return err
	}
	s := SessionFrom(ctx)
	if s == nil {
		return apperrors.Operation(ctx, "Commit", r.entity, "", ErrNoSession)
	}
	if err := s.Commit(ctx); err != nil {
		r.log.WithContext(ctx).Warn("Commit failed", "entity", r.entity, "error", err)
		return apperrors.Operation(ctx, "Commit", r.entity, "", err)
	}
	return nil
}

func (r *gormRepo[T]) getByID(ctx context.Context, id uuid.UUID, scope func(*gorm.DB) *gorm.DB) (*T, error) {
	if err := apperrors.FromContext(ctx, nil); err != nil {
		return nil, err
	}
	var out T
	found := true
	err := r.read(ctx, func(db *gorm.DB) error {
		if scope != nil {
			db = scope(db)
		}
		err := db.Where("id = ?", id).First(&out).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			found = false
			return nil
		}
		return err
	})
	if err != nil {
		return nil, apperrors.Operation(ctx, "GetByID", r.entity, id.String(), err)
	}
	if err := apperrors.FromContext(ctx, nil); err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &out, nil
}

func (r *gormRepo[T]) getAll(ctx context.Context, scope func(*gorm.DB) *gorm.DB) ([]*T, error) {
	if err := apperrors.FromContext(ctx, nil); err != nil {
		return nil, err
	}
	var out []*T
	err := r.read(ctx, func(db *gorm.DB) error {
		if scope != nil {
			db = scope(db)
		}
		return db.Find(&out).Error
	})
	if err != nil {
		return nil, apperrors.Operation(ctx, "GetAll", r.entity, "", err)
	}
	if err := apperrors.FromContext(ctx, nil); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *gormRepo[T]) read(ctx context.Context, fn func(db *gorm.DB) error) error {
	if s := SessionFrom(ctx); s != nil {
		return s.Read(ctx, fn)
	}
	return fn(r.db.WithContext(ctx))
}

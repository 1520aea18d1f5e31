package errors

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrOperationFailed marks a lower-level storage fault.
	ErrOperationFailed = errors.New("operation failed")
	// ErrCancelled marks cooperative cancellation observed mid-operation.
	ErrCancelled = errors.New("operation cancelled")
)

// OperationError wraps a storage fault with the operation, entity type and id
// that failed. It matches ErrOperationFailed via errors.Is.
type OperationError struct {
	Op     string
	Entity string
	ID     string
	Err    error
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("[%s] an error occurred on %s entity of type %s", e.Op, opVerb(e.Op), e.Entity)
	if e.ID != "" {
		msg += " with id: " + e.ID
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *OperationError) Unwrap() error { return e.Err }

func (e *OperationError) Is(target error) bool { return target == ErrOperationFailed }

func opVerb(op string) string {
	switch op {
	case "Add":
		return "adding"
	case "Commit":
		return "saving changes for"
	default:
		return "getting"
	}
}

// InvalidArgument returns an error matching ErrInvalidArgument.
func InvalidArgument(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// Operation wraps err as an OperationError unless it was caused by
// cancellation of ctx, in which case an ErrCancelled error is returned.
func Operation(ctx context.Context, op, entity, id string, err error) error {
	if err == nil {
		return nil
	}
	if cerr := FromContext(ctx, err); cerr != nil {
		return cerr
	}
	return &OperationError{Op: op, Entity: entity, ID: id, Err: err}
}

// FromContext returns an ErrCancelled error when err stems from context
// cancellation or ctx is already done. It returns nil otherwise.
func FromContext(ctx context.Context, err error) error {
	if errors.Is(err, ErrCancelled) {
		return err
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %w", ErrCancelled, err)
	}
	if ctx != nil && ctx.Err() != nil {
		if err == nil {
			return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		}
		return fmt.Errorf("%w: %w", ErrCancelled, errors.Join(ctx.Err(), err))
	}
	return nil
}

// Is reports errors.Is(err, target); re-exported so callers need a single import.
func Is(err, target error) bool { return errors.Is(err, target) }

// As reports errors.As(err, target).
func As(err error, target any) bool { return errors.As(err, target) }

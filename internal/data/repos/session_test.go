package repos

import (
	"context"
	"testing"

	"github.com/yungbote/personservice-backend/internal/data/repos/testutil"
)

func TestSessionRollbackDiscardsStagedRows(t *testing.T) {
	db := testutil.SQLite(t)
	repo := NewPersonRepo(db, testutil.Logger(t))

	session := NewSession(db)
	ctx := WithSession(context.Background(), session)

	p, err := repo.Add(ctx, testutil.NewPerson("Staged", "Only"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	visible, err := repo.GetByID(ctx, p.ID)
	if err != nil || visible == nil {
		t.Fatalf("GetByID in session: expected staged row, got %+v, %v", visible, err)
	}

	if err := session.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
	if session.Pending() {
		t.Fatalf("Rollback: expected no pending changes")
	}

	gone, err := repo.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if gone != nil {
		t.Fatalf("GetByID: expected rolled back row to be absent")
	}
}

func TestSessionCommitWithoutWritesIsNoop(t *testing.T) {
	session := NewSession(testutil.SQLite(t))
	if err := session.Commit(context.Background()); err != nil {
		t.Fatalf("Commit: %v", err)
	}
	if err := session.Rollback(); err != nil {
		t.Fatalf("Rollback: %v", err)
	}
}

func TestSessionFromContext(t *testing.T) {
	if SessionFrom(context.Background()) != nil {
		t.Fatalf("SessionFrom: expected nil for bare context")
	}
	s := NewSession(nil)
	if SessionFrom(WithSession(context.Background(), s)) != s {
		t.Fatalf("SessionFrom: expected stored session")
	}
}

func TestScopeReusesExistingSession(t *testing.T) {
	db := testutil.SQLite(t)
	open := Scope(db)

	ctx, end := open(context.Background())
	outer := SessionFrom(ctx)
	if outer == nil {
		t.Fatalf("Scope: expected a session")
	}

	nested, endNested := open(ctx)
	if SessionFrom(nested) != outer {
		t.Fatalf("Scope: nested call opened a new session")
	}
	if err := endNested(); err != nil {
		t.Fatalf("nested end: %v", err)
	}

	repo := NewPersonRepo(db, testutil.Logger(t))
	p, err := repo.Add(ctx, testutil.NewPerson("Never", "Committed"))
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := end(); err != nil {
		t.Fatalf("end: %v", err)
	}
	got, err := repo.GetByID(context.Background(), p.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got != nil {
		t.Fatalf("Scope end: expected uncommitted person to be rolled back")
	}
}

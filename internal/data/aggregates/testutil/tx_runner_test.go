package testutil

import (
	"context"
	"errors"
	"testing"

	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

func TestInjectedTxRunner_CommitsOnSuccess(t *testing.T) {
	r := &InjectedTxRunner{}
	called := false
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !called {
		t.Fatalf("expected callback to run")
	}
	if r.BeginCalls != 1 || r.CommitCalls != 1 || r.RollbackCalls != 0 {
		t.Fatalf("unexpected counters begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_RollbackOnBodyError(t *testing.T) {
	r := &InjectedTxRunner{}
	bodyErr := errors.New("boom")
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		return bodyErr
	})
	if !errors.Is(err, bodyErr) {
		t.Fatalf("expected body err, got %v", err)
	}
	if r.BeginCalls != 1 || r.CommitCalls != 0 || r.RollbackCalls != 1 {
		t.Fatalf("unexpected counters begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_FailCommitTriggersRollback(t *testing.T) {
	commitErr := errors.New("commit failed")
	r := &InjectedTxRunner{FailCommit: commitErr}
	err := r.InTx(context.Background(), func(_ dbctx.Context) error {
		return nil
	})
	if !errors.Is(err, commitErr) {
		t.Fatalf("expected commit err, got %v", err)
	}
	if r.BeginCalls != 1 || r.CommitCalls != 0 || r.RollbackCalls != 1 {
		t.Fatalf("unexpected counters begin=%d commit=%d rollback=%d", r.BeginCalls, r.CommitCalls, r.RollbackCalls)
	}
}

func TestInjectedTxRunner_FailSavepointAt(t *testing.T) {
	spErr := errors.New("savepoint failed")
	r := &InjectedTxRunner{FailSavepointAt: 2, FailSavepoint: spErr}

	var ran []int
	for i := 1; i <= 3; i++ {
		i := i
		err := r.InSavepoint(dbctx.Context{Ctx: context.Background()}, func(_ dbctx.Context) error {
			ran = append(ran, i)
			return nil
		})
		if i == 2 && !errors.Is(err, spErr) {
			t.Fatalf("expected savepoint err on call 2, got %v", err)
		}
		if i != 2 && err != nil {
			t.Fatalf("unexpected err on call %d: %v", i, err)
		}
	}
	if len(ran) != 2 || ran[0] != 1 || ran[1] != 3 {
		t.Fatalf("unexpected bodies run: %v", ran)
	}
}

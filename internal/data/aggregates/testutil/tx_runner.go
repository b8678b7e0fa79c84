package testutil

import (
	"context"
	"sync"

	"github.com/yungbote/crm-backend/internal/data/aggregates"
	"github.com/yungbote/crm-backend/internal/platform/dbctx"
)

// InjectedTxRunner is a TxRunner for service tests that need to force a
// transaction to fail. With Inner set, bodies run against a real store and
// FailCommit discards their writes; without it, bodies see an empty dbctx.
type InjectedTxRunner struct {
	mu sync.Mutex

	Inner aggregates.TxRunner

	FailBegin  error
	FailCommit error
	// FailSavepointAt fails the Nth savepoint (1-based) before its body runs.
	FailSavepointAt int
	FailSavepoint   error

	BeginCalls     int
	CommitCalls    int
	RollbackCalls  int
	SavepointCalls int
}

var _ aggregates.TxRunner = (*InjectedTxRunner)(nil)

func (r *InjectedTxRunner) InTx(ctx context.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.BeginCalls++
	failBegin := r.FailBegin
	failCommit := r.FailCommit
	r.mu.Unlock()

	if failBegin != nil {
		return failBegin
	}

	body := func(dbc dbctx.Context) error {
		if fn != nil {
			if err := fn(dbc); err != nil {
				return err
			}
		}
		// Returning an error from inside the real transaction rolls it back,
		// which is what a failed commit leaves behind.
		return failCommit
	}

	var err error
	if r.Inner != nil {
		err = r.Inner.InTx(ctx, body)
	} else {
		err = body(dbctx.Context{Ctx: ctx})
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.RollbackCalls++
		return err
	}
	r.CommitCalls++
	return nil
}

func (r *InjectedTxRunner) InSavepoint(dbc dbctx.Context, fn func(dbc dbctx.Context) error) error {
	r.mu.Lock()
	r.SavepointCalls++
	n := r.SavepointCalls
	failAt := r.FailSavepointAt
	failErr := r.FailSavepoint
	r.mu.Unlock()

	if failAt > 0 && n == failAt && failErr != nil {
		return failErr
	}
	if fn == nil {
		return nil
	}
	if r.Inner != nil {
		return r.Inner.InSavepoint(dbc, fn)
	}
	return fn(dbc)
}

package services

// MutationObserver receives one call per mutation outcome. Implementations
// must be safe for concurrent use.
type MutationObserver interface {
	MutationFinished(operation, outcome string)
	BulkRowFinished(outcome string)
}

const (
	OutcomeCreated  = "created"
	OutcomeRejected = "rejected"
	OutcomeFailed   = "failed"
	OutcomeDeleted  = "deleted"
	OutcomeNotFound = "not_found"
)

type noopObserver struct{}

func (noopObserver) MutationFinished(string, string) {}
func (noopObserver) BulkRowFinished(string)          {}

// Package aggregates holds the write-side transaction primitives shared by the
// services: a TxRunner that opens transactions and savepoints, and MapError,
// which turns driver errors into a small set of codes (conflict, not found,
// retryable, internal) the services can branch on.
package aggregates

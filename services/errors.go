// services/errors.go
package services

import "errors"

var (
	// ErrCatalogEmpty means no quiz exists to select as today's challenge.
	ErrCatalogEmpty = errors.New("quiz bank is empty")

	// ErrInvalidAnswer rejects blank submissions before any state is read.
	ErrInvalidAnswer = errors.New("answer must be a non-empty string")

	// ErrSubmitConflict surfaces after a submission kept losing write races
	// past the retry budget. Safe for clients to retry the whole request.
	ErrSubmitConflict = errors.New("submission conflicted with concurrent requests")

	// errLostRace is internal: a concurrent submission for the same user
	// won the conditional update. The caller re-reads the ledger, where the
	// idempotency guard resolves the outcome.
	errLostRace = errors.New("lost submission race")
)

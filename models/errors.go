package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, the kinds callers branch on with errors.Is
var (
	// BadParameterError: malformed input, recoverable by correcting the call.
	BadParameterError = errors.New("bad parameter")

	// ForbiddenError: the actor lacks the role or relationship for the action.
	ForbiddenError = errors.New("forbidden")

	NotFoundError = errors.New("not found")

	// ConflictError: the write lost against concurrent state; refetch and retry.
	ConflictError = errors.New("duplicate value")

	// UnavailableError: the store was unreachable and nothing was applied.
	// Callers may retry.
	UnavailableError = errors.New("store unavailable")
)

// Case lifecycle related errors
var (
	// ErrInvalidTransition: the requested status edge is not in the transition table.
	ErrInvalidTransition = errors.Wrap(BadParameterError, "invalid status transition")

	// ErrPreconditionFailed: the edge exists but a transition-specific guard is unmet
	// (open follow-ups on close, missing on-hold reason, court date in the past...).
	ErrPreconditionFailed = errors.Wrap(BadParameterError, "transition precondition failed")

	// ErrConcurrentModification: optimistic version conflict, the caller should
	// refetch the case and retry.
	ErrConcurrentModification = errors.Wrap(ConflictError, "case was modified concurrently")

	// ErrCaseTerminal: archived and cancelled cases accept no further edges, so
	// refusals on them are a kind of invalid transition.
	ErrCaseTerminal = errors.Wrap(ErrInvalidTransition, "case is in a terminal status")
)

// Assignment related errors
var (
	ErrNoEligibleAdvocate    = errors.New("no eligible advocate for this case")
	ErrAdvocateNotAssignable = errors.Wrap(BadParameterError, "advocate is not assignable")
	ErrReassignmentCoolDown  = errors.Wrap(ErrPreconditionFailed, "reassignment attempted during cool-down window")
)

// DB related errors
var ErrIgnoreRollBackError = errors.New("ignore rollback error")

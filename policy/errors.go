package policy

import "errors"

var (
	// ErrClosedHolder is raised (as a panic) when a released holder is run.
	ErrClosedHolder = errors.New("policy holder is closed")

	// ErrEmptyHandle is raised (as a panic) when a handle without a holder is run.
	ErrEmptyHandle = errors.New("policy handle is empty")

	ErrHolderType = errors.New("unexpected policy holder type")
)

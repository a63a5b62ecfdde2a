package search

import "errors"

// Sentinel errors returned by Search.Run.
var (
	// ErrBudgetExhausted indicates the configured expansion budget was
	// exhausted before a goal node was popped from the open set.
	ErrBudgetExhausted = errors.New("search: expansion budget exhausted")
)

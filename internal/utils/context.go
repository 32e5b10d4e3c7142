// Package utils provides general-purpose helpers shared by the backup
// packages: context keys for run correlation, HMAC hashing for the object
// store integrity header, a resty client wrapper, JSON response writing and
// identifier generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// RunIDCtxKey is the key under which a backup run identifier is stored.
// The orchestrator stamps every automatic run so log lines from the adapter
// and the journal can be correlated.
//
//	ctx := utils.WithRunID(ctx, gen.Generate())
var RunIDCtxKey = contextKey("runID")

// WithRunID returns a copy of ctx carrying runID.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, RunIDCtxKey, runID)
}

// GetRunIDFromContext retrieves the run identifier from the context.
//
// Returns:
//   - ok == true: value is found and is a non-empty string
//   - ok == false: value is missing, empty or has an unexpected type
func GetRunIDFromContext(ctx context.Context) (string, bool) {
	runID, ok := ctx.Value(RunIDCtxKey).(string)
	if !ok || runID == "" {
		return "", false
	}
	return runID, true
}

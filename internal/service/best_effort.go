package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
)

// Outcome is the contained result of a [BestEffort] call.
type Outcome struct {
	Name string
	// Err is the error returned by the wrapped function, or the recovered
	// panic wrapped in [ErrPanicRecovered].
	Err      error
	Panicked bool
}

// Failed reports whether the wrapped function failed or panicked.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// BestEffort runs fn and contains whatever goes wrong: an error is logged and
// returned in the Outcome, a panic is recovered, logged and converted to an
// error. Nothing escapes to the caller.
func BestEffort(ctx context.Context, log *logger.Logger, name string, fn func(context.Context) error) (out Outcome) {
	out.Name = name

	defer func() {
		if r := recover(); r != nil {
			out.Err = fmt.Errorf("%w: %v", ErrPanicRecovered, r)
			out.Panicked = true
			log.Error().Err(out.Err).Str("operation", name).Msg("best-effort operation panicked")
		}
	}()

	if err := fn(ctx); err != nil {
		out.Err = err
		log.Warn().Err(err).Str("operation", name).Msg("best-effort operation failed")
	}

	return out
}

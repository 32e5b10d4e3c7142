package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-snapshot-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestBestEffort_Success(t *testing.T) {
	out := BestEffort(context.Background(), logger.Nop(), "noop", func(context.Context) error { return nil })

	assert.Equal(t, "noop", out.Name)
	assert.False(t, out.Failed())
	assert.False(t, out.Panicked)
}

func TestBestEffort_ContainsError(t *testing.T) {
	var buf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&buf)}
	boom := errors.New("boom")

	out := BestEffort(context.Background(), log, "upload", func(context.Context) error { return boom })

	assert.True(t, out.Failed())
	assert.ErrorIs(t, out.Err, boom)
	assert.False(t, out.Panicked)
	assert.Contains(t, buf.String(), `"operation":"upload"`)
	assert.Contains(t, buf.String(), "boom")
}

func TestBestEffort_RecoversPanic(t *testing.T) {
	var out Outcome
	assert.NotPanics(t, func() {
		out = BestEffort(context.Background(), logger.Nop(), "prune", func(context.Context) error {
			var m map[string]int
			m["x"] = 1
			return nil
		})
	})

	assert.True(t, out.Panicked)
	assert.ErrorIs(t, out.Err, ErrPanicRecovered)
	assert.Contains(t, out.Err.Error(), "assignment to entry in nil map")
}

func TestBestEffort_PassesContext(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	var got any
	BestEffort(ctx, logger.Nop(), "ctx", func(ctx context.Context) error {
		got = ctx.Value(key{})
		return nil
	})
	assert.Equal(t, "v", got)
}

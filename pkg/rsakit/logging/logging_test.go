package logging

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactedNeverCarriesValue(t *testing.T) {
	attr := Redacted("private_exponent")
	assert.Equal(t, "private_exponent", attr.Key)
	assert.Equal(t, Placeholder(), attr.Value.String())
}

func TestSlogBackedLoggerWrites(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := New(slog.New(handler)).With("component", "keygen")

	logger.Debug(context.Background(), "prime search complete", Redacted("prime"))

	out := buf.String()
	assert.Contains(t, out, "prime search complete")
	assert.Contains(t, out, "component=keygen")
	assert.Contains(t, out, Placeholder())
}

func TestDiscardIsSilent(t *testing.T) {
	// Must not panic and must keep returning a usable logger.
	logger := Discard().With("k", "v")
	logger.Info(context.Background(), "dropped")
	logger.Error(context.Background(), "dropped too")
}

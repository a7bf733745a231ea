package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/advent/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name: "zerr with metadata",
			err: zerr.With(
				zerr.With(zerr.New("base error"), "key1", "value1"),
				"key2", 42,
			),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name:         "metadata on a standard error",
			err:          zerr.With(errors.New("bad line"), "line", 3),
			wantMessages: []string{"bad line"},
			wantMetadata: []map[string]any{{"line": 3}},
		},
		{
			name: "metadata-only layer merges upward",
			err: zerr.With(
				zerr.Wrap(zerr.With(errors.New("bad line"), "line", 3), "failed to parse"),
				"day", 7,
			),
			wantMessages: []string{"failed to parse", "bad line"},
			wantMetadata: []map[string]any{{"day": 7, "line": 3}, nil},
		},
		{
			name:         "nil error",
			err:          nil,
			wantMessages: nil,
			wantMetadata: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			var messages []string
			var metadata []map[string]any
			for _, e := range entries {
				messages = append(messages, e.Message())
				metadata = append(metadata, e.Metadata())
			}

			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	err := zerr.With(zerr.Wrap(errors.New("line one\nline two"), "outer"), "b", 2)
	err = zerr.With(err, "a", 1)

	got := logger.FormatErrorEntries(logger.CollectErrorEntries(err))

	want := "Error: outer (a=1, b=2)\n" +
		"\n" +
		"  Caused by:\n" +
		"    → line one\n" +
		"      line two"
	assert.Equal(t, want, got)
}

package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/lexicon/pkg/logger"
)

type ctxKey struct{}

func traceExtractor(ctx context.Context) (slog.Attr, bool) {
	v, ok := ctx.Value(ctxKey{}).(string)
	if !ok || v == "" {
		return slog.Attr{}, false
	}
	return slog.String("trace", v), true
}

func decode(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json with extractors", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "info", Format: "json"}, &buf, traceExtractor, nil)

		ctx := context.WithValue(context.Background(), ctxKey{}, "abc")
		log.InfoContext(ctx, "resolved", slog.String("key", "message.one"))
		log.InfoContext(context.Background(), "plain")

		records := decode(t, &buf)
		require.Len(t, records, 2)
		require.Equal(t, "resolved", records[0]["msg"])
		require.Equal(t, "abc", records[0]["trace"])
		require.Equal(t, "message.one", records[0]["key"])
		require.NotContains(t, records[1], "trace")
	})

	t.Run("extractors survive With", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.Config{}, &buf, traceExtractor).
			With(slog.String("component", "resolver")).
			WithGroup("lookup")

		ctx := context.WithValue(context.Background(), ctxKey{}, "xyz")
		log.InfoContext(ctx, "hit", slog.String("key", "k"))

		records := decode(t, &buf)
		require.Len(t, records, 1)
		require.Equal(t, "resolver", records[0]["component"])
		require.Equal(t, map[string]any{"key": "k", "trace": "xyz"}, records[0]["lookup"])
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "warn"}, &buf)

		log.Info("dropped")
		log.Warn("kept")

		records := decode(t, &buf)
		require.Len(t, records, 1)
		require.Equal(t, "kept", records[0]["msg"])
	})

	t.Run("text format", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.Config{Format: "TEXT"}, &buf)

		log.Info("hello", slog.String("locale", "de"))

		require.Contains(t, buf.String(), "msg=hello")
		require.Contains(t, buf.String(), "locale=de")
	})

	t.Run("unknown level defaults to info", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(logger.Config{Level: "verbose"}, &buf)

		log.Debug("dropped")
		log.Info("kept")

		require.Len(t, decode(t, &buf), 1)
	})
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected slog.Level
		wantErr  bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			lvl, err := logger.ParseLevel(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expected, lvl)
		})
	}
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	require.False(t, log.Enabled(context.Background(), slog.LevelError))
	require.NotPanics(t, func() { log.Error("nothing") })
}

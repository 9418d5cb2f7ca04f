package observe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newTestObserver(t *testing.T) (*LogObserver, *observer.ObservedLogs) {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	return NewLogObserver(zap.New(core)), logs
}

func TestOnCallStartFlatPrompt(t *testing.T) {
	obs, logs := newTestObserver(t)

	obs.OnCallStart("c1", map[string]any{"prompt": "What is 2+2?"})

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "prompt", entries[0].Message)
	require.Equal(t, "What is 2+2?", entries[0].ContextMap()["content"])
}

func TestOnCallStartFragmentOrder(t *testing.T) {
	obs, logs := newTestObserver(t)

	obs.OnCallStart("c1", map[string]any{
		"messages": []any{
			map[string]any{"role": "system", "content": "a"},
			map[string]any{"role": "user", "content": "b"},
			map[string]any{"role": "user", "content": "c"},
		},
	})

	entries := logs.All()
	require.Len(t, entries, 3)
	var contents []string
	for _, entry := range entries {
		require.Equal(t, "message", entry.Message)
		contents = append(contents, entry.ContextMap()["content"].(string))
	}
	require.Equal(t, []string{"a", "b", "c"}, contents)
}

func TestOnCallStartUnknownShapeWarnsVerbatim(t *testing.T) {
	obs, logs := newTestObserver(t)

	raw := map[string]any{"blob": []byte("opaque")}
	obs.OnCallStart("c1", raw)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.Contains(t, entries[0].ContextMap(), "request")
}

func TestOnCallEndResponse(t *testing.T) {
	obs, logs := newTestObserver(t)

	obs.OnCallEnd("c1", "Positive", nil)

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "response", entries[0].Message)
	require.Equal(t, "Positive", entries[0].ContextMap()["content"])
}

func TestOnCallEndFailure(t *testing.T) {
	obs, logs := newTestObserver(t)

	obs.OnCallEnd("c1", "", errors.New("rate limited"))

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	require.Equal(t, "call failed", entries[0].Message)
}

func TestOnCallEndIdempotentPerCallID(t *testing.T) {
	obs, logs := newTestObserver(t)

	obs.OnCallEnd("c1", "Positive", nil)
	obs.OnCallEnd("c1", "Positive", nil)
	obs.OnCallEnd("c1", "", errors.New("late retry"))
	obs.OnCallEnd("c2", "Negative", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "c1", entries[0].ContextMap()["call_id"])
	require.Equal(t, "c2", entries[1].ContextMap()["call_id"])
}

func TestExactlyOneTerminalEntryPerCall(t *testing.T) {
	obs, logs := newTestObserver(t)

	for i := 0; i < 3; i++ {
		obs.OnCallStart("c1", map[string]any{"prompt": "p"})
	}
	obs.OnCallEnd("c1", "done", nil)
	obs.OnCallEnd("c1", "done", nil)

	terminal := 0
	for _, entry := range logs.All() {
		if entry.Message == "response" || entry.Message == "call failed" {
			terminal++
		}
	}
	require.Equal(t, 1, terminal)
}

// panicCore fails every write, standing in for a broken sink.
type panicCore struct{}

func (panicCore) Enabled(zapcore.Level) bool { return true }

func (c panicCore) With([]zapcore.Field) zapcore.Core { return c }

func (c panicCore) Check(entry zapcore.Entry, checked *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	return checked.AddCore(entry, c)
}

func (panicCore) Write(zapcore.Entry, []zapcore.Field) error { panic("sink exploded") }

func (panicCore) Sync() error { return nil }

func TestObserverFaultsNeverEscape(t *testing.T) {
	obs := NewLogObserver(zap.New(panicCore{}))

	require.NotPanics(t, func() {
		obs.OnCallStart("c1", map[string]any{"prompt": "p"})
		obs.OnCallEnd("c1", "r", nil)
		obs.OnCallEnd("c1", "", errors.New("boom"))
	})
}

func TestNilLoggerDefaultsToNop(t *testing.T) {
	obs := NewLogObserver(nil)
	require.NotPanics(t, func() {
		obs.OnCallStart("c1", map[string]any{"prompt": "p"})
		obs.OnCallEnd("c1", "r", nil)
	})
}

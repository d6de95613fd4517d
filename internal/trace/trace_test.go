package trace

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracer_EmitsToSink(t *testing.T) {
	rec := NewRecorder()
	tr := New(rec).Named("notify").Named("sms").With(F("channel", "sms"))

	tr.Info("sending", F("recipient", "a@b.c"))
	tr.Warn("careful")

	events := rec.Events()
	require.Len(t, events, 2)

	assert.Equal(t, "notify.sms", events[0].Component)
	assert.Equal(t, LevelInfo, events[0].Level)
	assert.Equal(t, "sending", events[0].Message)
	assert.Equal(t, "sms", events[0].Get("channel"))
	assert.Equal(t, "a@b.c", events[0].Get("recipient"))

	assert.Equal(t, LevelWarn, events[1].Level)
	assert.Equal(t, "", events[1].Get("recipient"))
}

func TestTracer_NilIsSafe(t *testing.T) {
	var tr *Tracer
	assert.NotPanics(t, func() {
		tr.Named("x").With(F("k", "v")).Info("ignored")
		tr.Error("ignored")
	})
	assert.Equal(t, "", tr.Component())
}

func TestTracer_WithDoesNotAliasParentFields(t *testing.T) {
	rec := NewRecorder()
	parent := New(rec).With(F("a", "1"))
	left := parent.With(F("b", "2"))
	right := parent.With(F("c", "3"))

	left.Info("left")
	right.Info("right")

	events := rec.Events()
	require.Len(t, events, 2)
	assert.Equal(t, "2", events[0].Get("b"))
	assert.Equal(t, "", events[0].Get("c"))
	assert.Equal(t, "3", events[1].Get("c"))
	assert.Equal(t, "", events[1].Get("b"))
}

func TestRecorder_ForComponent(t *testing.T) {
	rec := NewRecorder()
	root := New(rec)
	root.Named("ui").Named("windows").Info("one")
	root.Named("uix").Info("two")
	root.Named("ui").Info("three")

	got := rec.ForComponent("ui")
	require.Len(t, got, 2)
	assert.Equal(t, "one", got[0].Message)
	assert.Equal(t, "three", got[1].Message)

	rec.Reset()
	assert.Empty(t, rec.Messages())
}

func TestLevel_String(t *testing.T) {
	tests := map[Level]string{
		LevelInfo:    "info",
		LevelWarn:    "warn",
		LevelError:   "error",
		LevelHeading: "heading",
		Level(42):    "unknown",
	}
	for level, want := range tests {
		assert.Equal(t, want, level.String())
	}
}

// Package trace provides the structured event stream that every showcase
// writes its observable actions to.
//
// Components never print. They emit Events through a Tracer, and whatever
// Sink the Tracer was built with decides what happens next: the CLI renders
// them to the console via the printer package, tests collect them in a
// Recorder and assert on the sequence.
package trace

import (
	"strings"
	"sync"
)

// Level classifies an event for rendering
type Level int

const (
	// LevelInfo is a normal action trace
	LevelInfo Level = iota
	// LevelWarn reports a no-op or otherwise notable condition
	LevelWarn
	// LevelError reports a failed operation that did not abort the run
	LevelError
	// LevelHeading marks the start of a section of output
	LevelHeading
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelHeading:
		return "heading"
	default:
		return "unknown"
	}
}

// Field is a single key/value attribute attached to an event
type Field struct {
	Key   string
	Value string
}

// F builds a Field
func F(key, value string) Field {
	return Field{Key: key, Value: value}
}

// Event is one observable action
type Event struct {
	Component string
	Level     Level
	Message   string
	Fields    []Field
}

// Get returns the value of the named field, or "" if absent
func (e Event) Get(key string) string {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return ""
}

// Sink receives emitted events
type Sink interface {
	Emit(Event)
}

// Tracer emits events for one component. A nil *Tracer discards everything.
type Tracer struct {
	sink      Sink
	component string
	fields    []Field
}

// New creates a root tracer writing to sink
func New(sink Sink) *Tracer {
	return &Tracer{sink: sink}
}

// Named returns a child tracer for a sub-component. Names are joined with dots.
func (t *Tracer) Named(name string) *Tracer {
	if t == nil {
		return nil
	}
	component := name
	if t.component != "" {
		component = t.component + "." + name
	}
	return &Tracer{sink: t.sink, component: component, fields: t.fields}
}

// With returns a child tracer that attaches fields to every event
func (t *Tracer) With(fields ...Field) *Tracer {
	if t == nil {
		return nil
	}
	merged := make([]Field, 0, len(t.fields)+len(fields))
	merged = append(merged, t.fields...)
	merged = append(merged, fields...)
	return &Tracer{sink: t.sink, component: t.component, fields: merged}
}

// Component returns the dotted component name
func (t *Tracer) Component() string {
	if t == nil {
		return ""
	}
	return t.component
}

func (t *Tracer) Info(msg string, fields ...Field)    { t.emit(LevelInfo, msg, fields) }
func (t *Tracer) Warn(msg string, fields ...Field)    { t.emit(LevelWarn, msg, fields) }
func (t *Tracer) Error(msg string, fields ...Field)   { t.emit(LevelError, msg, fields) }
func (t *Tracer) Heading(msg string, fields ...Field) { t.emit(LevelHeading, msg, fields) }

func (t *Tracer) emit(level Level, msg string, fields []Field) {
	if t == nil || t.sink == nil {
		return
	}
	all := make([]Field, 0, len(t.fields)+len(fields))
	all = append(all, t.fields...)
	all = append(all, fields...)
	t.sink.Emit(Event{
		Component: t.component,
		Level:     level,
		Message:   msg,
		Fields:    all,
	})
}

// Recorder is an in-memory Sink. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Emit implements Sink
func (r *Recorder) Emit(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Events returns a copy of everything recorded so far
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// Messages returns the message of every recorded event, in order
func (r *Recorder) Messages() []string {
	events := r.Events()
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.Message
	}
	return out
}

// ForComponent returns the events whose component equals prefix or sits below it
func (r *Recorder) ForComponent(prefix string) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Component == prefix || strings.HasPrefix(e.Component, prefix+".") {
			out = append(out, e)
		}
	}
	return out
}

// Reset discards all recorded events
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}

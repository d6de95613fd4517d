// Package connection provides the process-wide shared database connection.
//
// There is exactly one Connection per process. It is built lazily by the
// first call to Shared and every later call returns the same pointer, so all
// holders observe the same connected flag. The connection is simulated: no
// database is contacted, state transitions and queries are traced.
package connection

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dyluth/creational/internal/trace"
)

// State is the lifecycle state of the shared connection
type State int

const (
	StateDisconnected State = iota
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnected:
		return "connected"
	default:
		return "unknown"
	}
}

// NotConnectedError is returned when a query is attempted while disconnected
type NotConnectedError struct {
	Query string
}

func (e *NotConnectedError) Error() string {
	return fmt.Sprintf("cannot execute %q: no connection established", e.Query)
}

// Connection is the shared connection. Obtain it with Shared.
type Connection struct {
	id     string
	tracer *trace.Tracer

	mu        sync.Mutex
	connected bool
}

// Holder lazily creates a single Connection and returns it to every caller.
// The zero value is ready to use.
type Holder struct {
	once sync.Once
	conn *Connection
}

// Get returns the held Connection, creating it on first use.
// The tracer passed on that first call is kept; later arguments are ignored.
func (h *Holder) Get(t *trace.Tracer) *Connection {
	h.once.Do(func() {
		h.conn = newConnection(t)
	})
	return h.conn
}

var process Holder

// Shared returns the process-wide Connection, creating it on first use
func Shared(t *trace.Tracer) *Connection {
	return process.Get(t)
}

func newConnection(t *trace.Tracer) *Connection {
	c := &Connection{
		id:     uuid.New().String(),
		tracer: t.Named("connection"),
	}
	c.tracer.Info("Creating new database connection instance", trace.F("id", c.id))
	return c
}

// ID identifies this instance
func (c *Connection) ID() string {
	return c.id
}

// Connected reports whether the connection is open
func (c *Connection) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.connected
}

// State returns the current lifecycle state
func (c *Connection) State() State {
	if c.Connected() {
		return StateConnected
	}
	return StateDisconnected
}

// Connect opens the connection. It returns false, leaving the connection
// open, when it was already connected.
func (c *Connection) Connect() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.connected {
		c.tracer.Warn("Connection already established", trace.F("id", c.id))
		return false
	}
	c.tracer.Info("Establishing database connection...", trace.F("id", c.id))
	c.connected = true
	return true
}

// RunQuery executes sql. It fails with *NotConnectedError while disconnected.
func (c *Connection) RunQuery(sql string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		c.tracer.Error("Error: no connection established", trace.F("id", c.id), trace.F("sql", sql))
		return &NotConnectedError{Query: sql}
	}
	c.tracer.Info("Executing query: "+sql, trace.F("id", c.id), trace.F("sql", sql))
	return nil
}

// Close closes the connection. It returns false when there was nothing to close.
func (c *Connection) Close() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		c.tracer.Warn("No active connection to close", trace.F("id", c.id))
		return false
	}
	c.tracer.Info("Closing database connection", trace.F("id", c.id))
	c.connected = false
	return true
}

package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

//go:embed scenario.yml
var defaultScenario []byte

// Scenario is the script the showcase driver plays back
type Scenario struct {
	Version       string              `yaml:"version"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Connection    ConnectionConfig    `yaml:"connection"`
	Editors       []EditorConfig      `yaml:"editors"`
}

// NotificationsConfig drives the Factory Method showcase: one message sent
// to one recipient through every listed channel
type NotificationsConfig struct {
	Message   string   `yaml:"message"`
	Recipient string   `yaml:"recipient"`
	Channels  []string `yaml:"channels"`
}

// ConnectionConfig drives the Singleton showcase
type ConnectionConfig struct {
	Queries []QueryConfig `yaml:"queries"`
}

// QueryConfig is a query run through one of the two handles the showcase
// obtains from the shared connection ("first" or "second")
type QueryConfig struct {
	Handle string `yaml:"handle"`
	SQL    string `yaml:"sql"`
}

// EditorConfig drives one editor in the Abstract Factory showcase
type EditorConfig struct {
	Platform string   `yaml:"platform"` // windows, macos or linux
	Actions  []string `yaml:"actions"`  // start, open, save or menu
}

// Validate performs strict validation on the scenario
func (s *Scenario) Validate() error {
	// Required: version
	if s.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", s.Version)
	}

	if err := s.Notifications.Validate(); err != nil {
		return err
	}

	for i, q := range s.Connection.Queries {
		if q.Handle != "first" && q.Handle != "second" {
			return fmt.Errorf("connection.queries[%d]: invalid handle: %s (must be 'first' or 'second')", i, q.Handle)
		}
		if q.SQL == "" {
			return fmt.Errorf("connection.queries[%d]: sql is required", i)
		}
	}

	if len(s.Editors) == 0 {
		return fmt.Errorf("no editors defined")
	}
	for i := range s.Editors {
		if err := s.Editors[i].Validate(i); err != nil {
			return err
		}
	}

	return nil
}

// Validate checks the notification section
func (n *NotificationsConfig) Validate() error {
	if n.Message == "" {
		return fmt.Errorf("notifications: message is required")
	}
	if n.Recipient == "" {
		return fmt.Errorf("notifications: recipient is required")
	}
	if len(n.Channels) == 0 {
		return fmt.Errorf("notifications: at least one channel is required")
	}
	for _, ch := range n.Channels {
		if ch != "sms" && ch != "email" && ch != "push" {
			return fmt.Errorf("notifications: invalid channel: %s (must be 'sms', 'email', or 'push')", ch)
		}
	}
	return nil
}

// Validate checks a single editor entry
func (e *EditorConfig) Validate(index int) error {
	if e.Platform != "windows" && e.Platform != "macos" && e.Platform != "linux" {
		return fmt.Errorf("editors[%d]: invalid platform: %s (must be 'windows', 'macos', or 'linux')", index, e.Platform)
	}
	if len(e.Actions) == 0 {
		return fmt.Errorf("editors[%d]: at least one action is required", index)
	}
	for _, a := range e.Actions {
		if a != "start" && a != "open" && a != "save" && a != "menu" {
			return fmt.Errorf("editors[%d]: invalid action: %s (must be 'start', 'open', 'save', or 'menu')", index, a)
		}
	}
	return nil
}

// Parse decodes and validates a scenario. Unknown keys are rejected.
func Parse(data []byte) (*Scenario, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var scenario Scenario
	if err := dec.Decode(&scenario); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("failed to parse YAML: empty scenario")
		}
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// Default returns the built-in scenario
func Default() (*Scenario, error) {
	return Parse(defaultScenario)
}

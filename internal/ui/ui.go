// Package ui defines the platform widget families and the Abstract Factory
// that builds them.
//
// # Families
//
// Every supported Platform has one Button, one Menu and one Dialog
// implementation. A Factory is bound to a single Platform and only ever
// returns widgets of that Platform, so code that receives a Factory gets a
// mutually consistent set without naming a concrete type.
//
// # Rendering
//
// Rendering is simulated. Each widget operation emits a trace event whose
// message names the platform style and whose "platform" field carries the
// Platform identifier.
package ui

import (
	"fmt"
	"strings"

	"github.com/dyluth/creational/internal/trace"
)

// Platform identifies a widget family
type Platform string

const (
	PlatformWindows Platform = "windows"
	PlatformMacOS   Platform = "macos"
	PlatformLinux   Platform = "linux"
)

// Platforms returns every supported platform in display order
func Platforms() []Platform {
	return []Platform{PlatformWindows, PlatformMacOS, PlatformLinux}
}

// ParsePlatform maps a case-insensitive name to a Platform
func ParsePlatform(name string) (Platform, error) {
	p := Platform(strings.ToLower(strings.TrimSpace(name)))
	switch p {
	case PlatformWindows, PlatformMacOS, PlatformLinux:
		return p, nil
	}
	return "", fmt.Errorf("unknown platform: %q (must be 'windows', 'macos', or 'linux')", name)
}

// DisplayName is the human-facing platform name used in traces
func (p Platform) DisplayName() string {
	switch p {
	case PlatformWindows:
		return "Windows"
	case PlatformMacOS:
		return "macOS"
	case PlatformLinux:
		return "Linux"
	default:
		return string(p)
	}
}

// Button is a clickable widget
type Button interface {
	Render()
	OnClick()
	Platform() Platform
}

// Menu is a selectable list widget
type Menu interface {
	Render()
	Select()
	Platform() Platform
}

// Dialog is a modal window
type Dialog interface {
	Show()
	Close()
	Platform() Platform
}

// Factory creates one consistent widget family
type Factory interface {
	CreateButton() Button
	CreateMenu() Menu
	CreateDialog() Dialog

	// Platform is the family every created widget belongs to
	Platform() Platform
}

// FactoryFor returns the Factory for a platform
func FactoryFor(p Platform, t *trace.Tracer) (Factory, error) {
	switch p {
	case PlatformWindows:
		return NewWindowsFactory(t), nil
	case PlatformMacOS:
		return NewMacOSFactory(t), nil
	case PlatformLinux:
		return NewLinuxFactory(t), nil
	}
	return nil, fmt.Errorf("no widget factory for platform %q", p)
}

// widget carries the tracing shared by every concrete widget
type widget struct {
	platform Platform
	tracer   *trace.Tracer
}

func newWidget(t *trace.Tracer, p Platform, kind string) widget {
	return widget{
		platform: p,
		tracer:   t.Named("ui").Named(string(p)).Named(kind).With(trace.F("platform", string(p))),
	}
}

func (w widget) Platform() Platform { return w.platform }

// emit traces format with the platform display name as its single argument
func (w widget) emit(format string) {
	w.tracer.Info(fmt.Sprintf(format, w.platform.DisplayName()))
}

package ui

import "github.com/dyluth/creational/internal/trace"

// WindowsFactory builds Windows widgets
type WindowsFactory struct {
	tracer *trace.Tracer
}

func NewWindowsFactory(t *trace.Tracer) *WindowsFactory {
	return &WindowsFactory{tracer: t}
}

func (f *WindowsFactory) Platform() Platform { return PlatformWindows }

func (f *WindowsFactory) CreateButton() Button {
	return &windowsButton{newWidget(f.tracer, PlatformWindows, "button")}
}

func (f *WindowsFactory) CreateMenu() Menu {
	return &windowsMenu{newWidget(f.tracer, PlatformWindows, "menu")}
}

func (f *WindowsFactory) CreateDialog() Dialog {
	return &windowsDialog{newWidget(f.tracer, PlatformWindows, "dialog")}
}

// MacOSFactory builds macOS widgets
type MacOSFactory struct {
	tracer *trace.Tracer
}

func NewMacOSFactory(t *trace.Tracer) *MacOSFactory {
	return &MacOSFactory{tracer: t}
}

func (f *MacOSFactory) Platform() Platform { return PlatformMacOS }

func (f *MacOSFactory) CreateButton() Button {
	return &macOSButton{newWidget(f.tracer, PlatformMacOS, "button")}
}

func (f *MacOSFactory) CreateMenu() Menu {
	return &macOSMenu{newWidget(f.tracer, PlatformMacOS, "menu")}
}

func (f *MacOSFactory) CreateDialog() Dialog {
	return &macOSDialog{newWidget(f.tracer, PlatformMacOS, "dialog")}
}

// LinuxFactory builds Linux widgets
type LinuxFactory struct {
	tracer *trace.Tracer
}

func NewLinuxFactory(t *trace.Tracer) *LinuxFactory {
	return &LinuxFactory{tracer: t}
}

func (f *LinuxFactory) Platform() Platform { return PlatformLinux }

func (f *LinuxFactory) CreateButton() Button {
	return &linuxButton{newWidget(f.tracer, PlatformLinux, "button")}
}

func (f *LinuxFactory) CreateMenu() Menu {
	return &linuxMenu{newWidget(f.tracer, PlatformLinux, "menu")}
}

func (f *LinuxFactory) CreateDialog() Dialog {
	return &linuxDialog{newWidget(f.tracer, PlatformLinux, "dialog")}
}

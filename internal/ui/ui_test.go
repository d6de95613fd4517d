package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dyluth/creational/internal/trace"
)

func TestFactory_ProducesSinglePlatformFamily(t *testing.T) {
	for _, p := range Platforms() {
		t.Run(string(p), func(t *testing.T) {
			f, err := FactoryFor(p, nil)
			require.NoError(t, err)

			assert.Equal(t, p, f.Platform())
			assert.Equal(t, p, f.CreateButton().Platform())
			assert.Equal(t, p, f.CreateMenu().Platform())
			assert.Equal(t, p, f.CreateDialog().Platform())
		})
	}
}

func TestFactory_ConcreteTypes(t *testing.T) {
	windows := NewWindowsFactory(nil)
	assert.IsType(t, &windowsButton{}, windows.CreateButton())
	assert.IsType(t, &windowsMenu{}, windows.CreateMenu())
	assert.IsType(t, &windowsDialog{}, windows.CreateDialog())

	mac := NewMacOSFactory(nil)
	assert.IsType(t, &macOSButton{}, mac.CreateButton())
	assert.IsType(t, &macOSMenu{}, mac.CreateMenu())
	assert.IsType(t, &macOSDialog{}, mac.CreateDialog())

	linux := NewLinuxFactory(nil)
	assert.IsType(t, &linuxButton{}, linux.CreateButton())
	assert.IsType(t, &linuxMenu{}, linux.CreateMenu())
	assert.IsType(t, &linuxDialog{}, linux.CreateDialog())
}

func TestWidgets_TraceTheirPlatform(t *testing.T) {
	rec := trace.NewRecorder()
	f := NewMacOSFactory(trace.New(rec))

	button := f.CreateButton()
	menu := f.CreateMenu()
	dialog := f.CreateDialog()

	button.Render()
	button.OnClick()
	menu.Render()
	menu.Select()
	dialog.Show()
	dialog.Close()

	assert.Equal(t, []string{
		"Rendering macOS-style button",
		"macOS-style click animation",
		"Rendering macOS-style menu",
		"macOS-style menu selection",
		"Showing macOS-style dialog",
		"Closing macOS-style dialog",
	}, rec.Messages())

	for _, e := range rec.Events() {
		assert.Equal(t, "macos", e.Get("platform"))
	}
	assert.Len(t, rec.ForComponent("ui.macos.button"), 2)
	assert.Len(t, rec.ForComponent("ui.macos.dialog"), 2)
}

func TestParsePlatform(t *testing.T) {
	tests := []struct {
		input   string
		want    Platform
		wantErr bool
	}{
		{"windows", PlatformWindows, false},
		{"macOS", PlatformMacOS, false},
		{" Linux ", PlatformLinux, false},
		{"beos", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePlatform(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFactoryFor_UnknownPlatform(t *testing.T) {
	_, err := FactoryFor(Platform("beos"), nil)
	assert.Error(t, err)
}

func TestPlatform_DisplayName(t *testing.T) {
	assert.Equal(t, "Windows", PlatformWindows.DisplayName())
	assert.Equal(t, "macOS", PlatformMacOS.DisplayName())
	assert.Equal(t, "Linux", PlatformLinux.DisplayName())
	assert.Equal(t, "beos", Platform("beos").DisplayName())
}

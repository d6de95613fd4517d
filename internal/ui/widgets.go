package ui

// Windows family

type windowsButton struct{ widget }

func (b *windowsButton) Render()  { b.emit("Rendering %s-style button") }
func (b *windowsButton) OnClick() { b.emit("%s-style click animation") }

type windowsMenu struct{ widget }

func (m *windowsMenu) Render() { m.emit("Rendering %s-style menu") }
func (m *windowsMenu) Select() { m.emit("%s-style menu selection") }

type windowsDialog struct{ widget }

func (d *windowsDialog) Show()  { d.emit("Showing %s-style dialog") }
func (d *windowsDialog) Close() { d.emit("Closing %s-style dialog") }

// macOS family

type macOSButton struct{ widget }

func (b *macOSButton) Render()  { b.emit("Rendering %s-style button") }
func (b *macOSButton) OnClick() { b.emit("%s-style click animation") }

type macOSMenu struct{ widget }

func (m *macOSMenu) Render() { m.emit("Rendering %s-style menu") }
func (m *macOSMenu) Select() { m.emit("%s-style menu selection") }

type macOSDialog struct{ widget }

func (d *macOSDialog) Show()  { d.emit("Showing %s-style dialog") }
func (d *macOSDialog) Close() { d.emit("Closing %s-style dialog") }

// Linux family

type linuxButton struct{ widget }

func (b *linuxButton) Render()  { b.emit("Rendering %s-style button") }
func (b *linuxButton) OnClick() { b.emit("%s-style click animation") }

type linuxMenu struct{ widget }

func (m *linuxMenu) Render() { m.emit("Rendering %s-style menu") }
func (m *linuxMenu) Select() { m.emit("%s-style menu selection") }

type linuxDialog struct{ widget }

func (d *linuxDialog) Show()  { d.emit("Showing %s-style dialog") }
func (d *linuxDialog) Close() { d.emit("Closing %s-style dialog") }

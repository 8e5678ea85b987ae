package filehub

import (
	"github.com/rivo/tview"
)

// App is the part of *tview.Application the viewer drives.
// QueueUpdateDraw is the only way background goroutines touch the UI.
type App interface {
	Run() error
	QueueUpdateDraw(f func())
	SetFocus(p tview.Primitive)
	SetRoot(root tview.Primitive, fullscreen bool)
	Stop()
	EnableMouse(bool)
}

type UpdateDrawQueuer func(f func())
type Focuser func(p tview.Primitive)
type RootSetter func(root tview.Primitive, fullscreen bool)

type AppMethod func(a *appProxy)

func NewApp(app *tview.Application, o ...AppMethod) App {
	a := &appProxy{}
	if app != nil {
		a.setFocus = func(primitive tview.Primitive) {
			_ = app.SetFocus(primitive)
		}
		a.setRoot = func(root tview.Primitive, fullscreen bool) {
			_ = app.SetRoot(root, fullscreen)
		}
		a.enableMouse = func(b bool) {
			_ = app.EnableMouse(b)
		}
		a.queueUpdateDraw = func(f func()) {
			_ = app.QueueUpdateDraw(f)
		}
		a.run = app.Run
		a.stop = app.Stop
	}
	for _, m := range o {
		m(a)
	}
	return a
}

func WithQueueUpdateDraw(queueUpdateDraw UpdateDrawQueuer) AppMethod {
	return func(a *appProxy) {
		a.queueUpdateDraw = queueUpdateDraw
	}
}

func WithSetFocus(setFocus Focuser) AppMethod {
	return func(a *appProxy) {
		a.setFocus = setFocus
	}
}

func WithSetRoot(setRoot RootSetter) AppMethod {
	return func(a *appProxy) {
		a.setRoot = setRoot
	}
}

func WithStop(stop func()) AppMethod {
	return func(a *appProxy) {
		a.stop = stop
	}
}

var _ App = (*appProxy)(nil)

type appProxy struct {
	queueUpdateDraw UpdateDrawQueuer
	setFocus        Focuser
	setRoot         RootSetter
	enableMouse     func(bool)
	run             func() error
	stop            func()
}

func (a appProxy) EnableMouse(b bool) {
	a.enableMouse(b)
}

func (a appProxy) QueueUpdateDraw(f func()) {
	a.queueUpdateDraw(f)
}

func (a appProxy) SetFocus(p tview.Primitive) {
	a.setFocus(p)
}

func (a appProxy) SetRoot(root tview.Primitive, fullscreen bool) {
	a.setRoot(root, fullscreen)
}

func (a appProxy) Run() error {
	return a.run()
}

func (a appProxy) Stop() {
	a.stop()
}

package filehub

import (
	"testing"
	"time"

	"github.com/rivo/tview"
)

// testApp queues updates so tests run them on the test goroutine,
// the way tview runs them on the UI goroutine.
type testApp struct {
	queue   chan func()
	root    tview.Primitive
	focus   tview.Primitive
	stopped bool
}

func newTestApp() *testApp {
	return &testApp{queue: make(chan func(), 32)}
}

func (a *testApp) Run() error { return nil }

func (a *testApp) QueueUpdateDraw(f func()) {
	a.queue <- f
}

func (a *testApp) SetFocus(p tview.Primitive) {
	a.focus = p
}

func (a *testApp) SetRoot(root tview.Primitive, fullscreen bool) {
	_ = fullscreen
	a.root = root
}

func (a *testApp) Stop() {
	a.stopped = true
}

func (a *testApp) EnableMouse(_ bool) {}

// drain runs the next n queued updates.
func (a *testApp) drain(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case f := <-a.queue:
			f()
		case <-time.After(5 * time.Second):
			t.Fatalf("timed out waiting for update %d of %d", i+1, n)
		}
	}
}

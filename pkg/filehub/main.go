package filehub

import (
	"github.com/rivo/tview"

	"github.com/filetug/filehub/pkg/catalogapi"
)

// SetupApp mounts a viewer as the root of app and starts the first load.
func SetupApp(app *tview.Application, c catalogapi.Catalog, opts Options) *Viewer {
	a := NewApp(app)
	a.EnableMouse(true)
	v := NewViewer(a, c, opts)
	a.SetRoot(v, true)
	a.SetFocus(v.filesPanel)
	v.Reload()
	return v
}

package filehub

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const helpText = `F1 - Help
F5 - Download selected file
F7 - Upload a file
F8 - Delete selected file
Ctrl+R - Reload files and stats
Alt+F - Focus filters
Alt+L - Focus files list
Tab - Next filter field
Alt+X - Exit the app`

func (v *Viewer) showHelp() {
	modal, _, _ := v.createHelpModal()
	v.app.SetRoot(modal, true)
}

func (v *Viewer) createHelpModal() (modal tview.Primitive, helpView *tview.TextView, button *tview.Button) {
	helpView = tview.NewTextView().
		SetDynamicColors(true).
		SetText(helpText).
		SetTextAlign(tview.AlignLeft)
	helpView.SetBackgroundColor(tcell.ColorDarkBlue)

	closeOnKey := func(event *tcell.EventKey) *tcell.EventKey {
		if event.Key() == tcell.KeyEscape || event.Key() == tcell.KeyF1 {
			v.closeModal()
			return nil
		}
		return event
	}
	helpView.SetInputCapture(closeOnKey)

	button = tview.NewButton("Close").SetSelectedFunc(v.closeModal)
	button.SetBackgroundColor(tcell.ColorDarkBlue)
	button.SetInputCapture(closeOnKey)

	helpFlex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(helpView, 0, 1, false).
		AddItem(button, 1, 0, true)
	helpFlex.SetBorder(true).
		SetTitle(" FileHub - Help ").
		SetTitleAlign(tview.AlignCenter)
	helpFlex.SetBackgroundColor(tcell.ColorDarkBlue)

	modal = centered(helpFlex, 40, 13)
	return modal, helpView, button
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewGrid().
		SetColumns(0, width, 0).
		SetRows(0, height, 0).
		AddItem(p, 1, 1, 1, 1, 0, 0, true)
}

// closeModal puts the viewer back as the root.
func (v *Viewer) closeModal() {
	v.app.SetRoot(v, true)
	v.app.SetFocus(v.filesPanel)
}

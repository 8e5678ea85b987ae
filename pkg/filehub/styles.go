package filehub

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

type Styles struct {
	FocusedBorderColor tcell.Color
	BlurBorderColor    tcell.Color

	TableHeaderColor tcell.Color
	HotkeyColor      tcell.Color

	SavedColor   tcell.Color
	ErrorColor   tcell.Color
	MessageColor tcell.Color
}

var Style = Styles{
	FocusedBorderColor: tcell.ColorCornflowerBlue,
	BlurBorderColor:    tcell.ColorGray,

	TableHeaderColor: tcell.ColorWhiteSmoke,
	HotkeyColor:      tcell.ColorYellow,

	SavedColor:   tcell.ColorGreen,
	ErrorColor:   tcell.ColorRed,
	MessageColor: tcell.ColorSlateGray,
}

// boxed applies the shared border look and switches the border colour with focus.
func boxed(box *tview.Box, title string) {
	box.SetBorder(true).
		SetTitle(" " + title + " ").
		SetTitleAlign(tview.AlignLeft).
		SetBorderColor(Style.BlurBorderColor)
	box.SetFocusFunc(func() {
		box.SetBorderColor(Style.FocusedBorderColor)
	})
	box.SetBlurFunc(func() {
		box.SetBorderColor(Style.BlurBorderColor)
	})
}

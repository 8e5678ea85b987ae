package filehub

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/filetug/filehub/pkg/filehub/hubui"
)

// bottom is the menu bar with a status line on its right.
type bottom struct {
	*tview.Flex
	menu      *tview.TextView
	status    *tview.TextView
	menuItems []hubui.MenuItem
}

func newBottom(v *Viewer) *bottom {
	b := &bottom{
		Flex: tview.NewFlex(),
		menu: tview.NewTextView().
			SetDynamicColors(true).
			SetRegions(true).
			SetTextColor(tcell.ColorSlateGray),
		status: tview.NewTextView().
			SetTextAlign(tview.AlignRight).
			SetTextColor(Style.MessageColor),
	}
	b.menuItems = b.getMenuItems(v)
	b.menu.SetHighlightedFunc(b.highlighted)
	b.AddItem(b.menu, 0, 3, false).
		AddItem(b.status, 0, 2, false)
	b.render()
	return b
}

func (b *bottom) render() {
	b.menu.SetText(b.renderMenuItems(b.menuItems))
}

func (b *bottom) renderMenuItems(menuItems []hubui.MenuItem) string {
	const separator = "┊"
	titles := make([]string, 0, len(menuItems))
	for _, mi := range menuItems {
		title := mi.Title
		for _, key := range mi.HotKeys {
			hotkeyText := fmt.Sprintf("[%s]%s[-]", Style.HotkeyColor.Name(), key)
			title = strings.Replace(title, key, hotkeyText, 1)
		}
		titles = append(titles, fmt.Sprintf(`["%s"]%s[""]`, regionID(mi), title))
	}
	return strings.Join(titles, separator)
}

// highlighted runs the action of a clicked menu item.
func (b *bottom) highlighted(added, _, _ []string) {
	if len(added) == 0 {
		return
	}
	region := added[0]
	b.menu.Highlight()
	for _, mi := range b.menuItems {
		if regionID(mi) == region && mi.Action != nil {
			mi.Action()
			return
		}
	}
}

// regionID derives a tview region name from the first hot key.
// Region names cannot contain '+'.
func regionID(mi hubui.MenuItem) string {
	return strings.ReplaceAll(mi.HotKeys[0], "+", "-")
}

func (b *bottom) setStatus(text string) {
	b.status.SetText(text)
}

func (b *bottom) getMenuItems(v *Viewer) []hubui.MenuItem {
	return []hubui.MenuItem{
		{Title: "F1 Help", HotKeys: []string{"F1"}, Action: v.showHelp},
		{Title: "F5 Download", HotKeys: []string{"F5"}, Action: v.downloadSelected},
		{Title: "F7 Upload", HotKeys: []string{"F7"}, Action: v.showUpload},
		{Title: "F8 Delete", HotKeys: []string{"F8"}, Action: v.confirmDelete},
		{Title: "Ctrl+R Reload", HotKeys: []string{"Ctrl+R"}, Action: v.Reload},
		{Title: "Alt+X Exit", HotKeys: []string{"Alt+X"}, Action: v.exit},
	}
}

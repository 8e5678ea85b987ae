package filehub

import (
	"github.com/rivo/tview"

	"github.com/filetug/filehub/pkg/catalog"
)

const (
	labelSearch  = "Search"
	labelType    = "Type"
	labelMinSize = "Min size (MB)"
	labelMaxSize = "Max size (MB)"
	labelFrom    = "From"
	labelTo      = "To"
)

// filterPanel edits the raw filter text. Every edit re-parses all fields,
// so a malformed field simply stops constraining the view.
type filterPanel struct {
	*tview.Form
	v          *Viewer
	search     *tview.InputField
	category   *tview.DropDown
	minSize    *tview.InputField
	maxSize    *tview.InputField
	from       *tview.InputField
	to         *tview.InputField
	categories []catalog.Category
	ready      bool
}

func newFilterPanel(v *Viewer) *filterPanel {
	p := &filterPanel{
		Form:       tview.NewForm(),
		v:          v,
		categories: append([]catalog.Category{catalog.CategoryNone}, catalog.Categories()...),
	}
	boxed(p.Box, "Filters")
	p.SetItemPadding(0)

	options := make([]string, len(p.categories))
	for i, c := range p.categories {
		options[i] = c.String()
	}

	changed := func(string) {
		p.apply()
	}
	p.search = tview.NewInputField().SetLabel(labelSearch).SetChangedFunc(changed)
	p.category = tview.NewDropDown().SetLabel(labelType).
		SetOptions(options, func(string, int) {
			p.apply()
		})
	p.minSize = tview.NewInputField().SetLabel(labelMinSize).SetFieldWidth(10).SetChangedFunc(changed)
	p.maxSize = tview.NewInputField().SetLabel(labelMaxSize).SetFieldWidth(10).SetChangedFunc(changed)
	p.from = tview.NewInputField().SetLabel(labelFrom).SetFieldWidth(11).
		SetPlaceholder(catalog.DateLayout).SetChangedFunc(changed)
	p.to = tview.NewInputField().SetLabel(labelTo).SetFieldWidth(11).
		SetPlaceholder(catalog.DateLayout).SetChangedFunc(changed)
	p.category.SetCurrentOption(0)

	p.AddFormItem(p.search).
		AddFormItem(p.category).
		AddFormItem(p.minSize).
		AddFormItem(p.maxSize).
		AddFormItem(p.from).
		AddFormItem(p.to).
		AddButton("Apply Filters", p.apply).
		AddButton("Reset", p.reset)

	p.ready = true
	return p
}

func (p *filterPanel) input() catalog.FilterInput {
	in := catalog.FilterInput{
		SearchText: p.search.GetText(),
		MinSizeMB:  p.minSize.GetText(),
		MaxSizeMB:  p.maxSize.GetText(),
		DateFrom:   p.from.GetText(),
		DateTo:     p.to.GetText(),
	}
	if i, _ := p.category.GetCurrentOption(); i > 0 && i < len(p.categories) {
		in.Category = string(p.categories[i])
	}
	return in
}

func (p *filterPanel) apply() {
	if !p.ready {
		return
	}
	p.v.SetFilter(catalog.ParseFilterInput(p.input(), p.v.opts.Location))
}

// reset clears every field and applies the empty filter once.
func (p *filterPanel) reset() {
	p.ready = false
	p.search.SetText("")
	p.category.SetCurrentOption(0)
	p.minSize.SetText("")
	p.maxSize.SetText("")
	p.from.SetText("")
	p.to.SetText("")
	p.ready = true
	p.apply()
}

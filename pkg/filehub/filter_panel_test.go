package filehub

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/filetug/filehub/pkg/catalog"
)

func TestFilterPanel_EditsRecompute(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)
	v := f.viewer
	p := v.filterPanel

	p.search.SetText("o")
	assert.Equal(t, []string{"a", "b", "c"}, ids(v.Visible()))

	p.category.SetCurrentOption(2)
	assert.Equal(t, catalog.CategoryImage, v.Filter().Category)
	assert.Equal(t, []string{"b"}, ids(v.Visible()))

	p.category.SetCurrentOption(0)
	p.minSize.SetText("1")
	assert.Equal(t, []string{"a", "b"}, ids(v.Visible()))

	p.minSize.SetText("abc")
	assert.Nil(t, v.Filter().MinSizeMB, "malformed bound is unset")
	assert.Equal(t, []string{"a", "b", "c"}, ids(v.Visible()))

	p.maxSize.SetText("1")
	assert.Equal(t, []string{"b", "c"}, ids(v.Visible()))
	p.maxSize.SetText("")

	p.from.SetText("2024-03-11")
	p.to.SetText("2024-03-12")
	assert.Equal(t, []string{"b"}, ids(v.Visible()))

	p.from.SetText("2024-13-45")
	assert.Nil(t, v.Filter().DateFrom)
}

func TestFilterPanel_Reset(t *testing.T) {
	f := newViewerFixture(t, "")
	f.load(t)
	v := f.viewer
	p := v.filterPanel

	p.search.SetText("notes")
	p.category.SetCurrentOption(3)
	p.maxSize.SetText("0.0001")
	assert.Empty(t, v.Visible())

	p.reset()
	assert.True(t, v.Filter().IsEmpty())
	assert.Equal(t, []string{"a", "b", "c"}, ids(v.Visible()))
	assert.Equal(t, "", p.search.GetText())
	i, text := p.category.GetCurrentOption()
	assert.Equal(t, 0, i)
	assert.Equal(t, "All Types", text)
}

func TestFilterPanel_Input(t *testing.T) {
	f := newViewerFixture(t, "")
	p := f.viewer.filterPanel

	p.search.SetText("rep")
	p.category.SetCurrentOption(1)
	p.minSize.SetText("0.5")
	p.to.SetText("2024-03-10")
	assert.Equal(t, catalog.FilterInput{
		SearchText: "rep",
		Category:   "PDF",
		MinSizeMB:  "0.5",
		DateTo:     "2024-03-10",
	}, p.input())

	p.apply()
	assert.Equal(t, "rep", f.viewer.Filter().SearchText)
}

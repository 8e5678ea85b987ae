package chroma2tcell

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/rivo/tview"
)

const DefaultStyle = "dracula"

var getStyle = styles.Get

var getFallbackStyle = func() *chroma.Style {
	return styles.Fallback
}

// Colorize renders text as tview colour-tagged markup.
// Token values are escaped so brackets in the source never read as tags.
func Colorize(text, styleName string, lexer chroma.Lexer) (string, error) {
	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		return "", err
	}

	style := getStyle(styleName)
	if style == nil {
		style = getFallbackStyle()
	}

	var sb strings.Builder
	for _, token := range iterator.Tokens() {
		value := tview.Escape(token.Value)
		entry := style.Get(token.Type)
		if !entry.Colour.IsSet() {
			sb.WriteString(value)
			continue
		}
		sb.WriteString("[" + entry.Colour.String())
		if entry.Bold == chroma.Yes {
			sb.WriteString("::b")
		}
		sb.WriteString("]")
		sb.WriteString(value)
		if entry.Bold == chroma.Yes {
			sb.WriteString("[-::-]")
		} else {
			sb.WriteString("[-]")
		}
	}

	return sb.String(), nil
}

// ColorizeForTview looks up the lexer for language, falling back to plain text.
func ColorizeForTview(text, language string, getLexer func(string) chroma.Lexer) (string, error) {
	lexer := getLexer(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return Colorize(text, DefaultStyle, lexer)
}

func ColorizeJSONForTview(jsonStr string, getLexer func(string) chroma.Lexer) (string, error) {
	return ColorizeForTview(jsonStr, "json", getLexer)
}

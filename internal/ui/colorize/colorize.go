// Package colorize highlights machine-readable output for the terminal.
package colorize

import (
	"os"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Disabled reports whether colors were turned off through the environment.
func Disabled() bool {
	return os.Getenv("V8BITFIELD_NO_COLOR") != "" || os.Getenv("NO_COLOR") != ""
}

// getStyle returns the report style with fallbacks
func getStyle() *chroma.Style {
	candidates := []string{"v8bitfield-dark", "dracula", "monokai"}
	for _, name := range candidates {
		if style := styles.Get(name); style != nil {
			return style
		}
	}
	return styles.Fallback
}

// getTerminalFormatter returns an appropriate terminal formatter
func getTerminalFormatter() chroma.Formatter {
	// Try high-color first, then fallback
	candidates := []string{"terminal16m", "terminal256"}
	for _, name := range candidates {
		if formatter := formatters.Get(name); formatter != nil {
			return formatter
		}
	}
	return formatters.Fallback
}

// ColorizeJSON highlights a JSON document. The input is returned unchanged
// when colors are disabled or no JSON lexer is registered.
func ColorizeJSON(code string) (string, error) {
	if Disabled() {
		return code, nil
	}

	lexer := lexers.Get("json")
	if lexer == nil {
		return code, nil
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code, err
	}

	var buf strings.Builder
	if err := getTerminalFormatter().Format(&buf, getStyle(), iterator); err != nil {
		return code, err
	}
	return buf.String(), nil
}

package colorize

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/styles"
)

// ReportDark is the style for JSON decode reports, using the same palette
// as the text output: symbols in green, numbers in coral.
var ReportDark = styles.Register(chroma.MustNewStyle("v8bitfield-dark", chroma.StyleEntries{
	chroma.Text:       "#DFDBDD",
	chroma.Background: "bg:#1e1e1e",

	chroma.NameTag:     "#00A4FF", // object keys
	chroma.Punctuation: "#858392",
	chroma.Operator:    "#858392",

	chroma.LiteralString:        "#12C78F",
	chroma.LiteralNumber:        "#FF577D",
	chroma.LiteralNumberInteger: "#FF577D",
	chroma.LiteralNumberFloat:   "#FF577D",

	chroma.KeywordConstant: "#FFD700", // true, false, null
}))

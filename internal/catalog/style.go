package catalog

import "strings"

// Style is the presentation variant of a photoshoot.
type Style string

const (
	Lifestyle  Style = "lifestyle"
	Studio     Style = "studio"
	Editorial  Style = "editorial"
	Commercial Style = "commercial"
	Artistic   Style = "artistic"
	Elegant    Style = "elegant"
	Vintage    Style = "vintage"
	Modern     Style = "modern"
	Cultural   Style = "cultural"
)

// DefaultStyle is used when no style, or an unknown one, is requested.
const DefaultStyle = Lifestyle

var styles = []Style{Lifestyle, Studio, Editorial, Commercial, Artistic, Elegant, Vintage, Modern, Cultural}

var styleAliases = map[string]Style{
	"life":         Lifestyle,
	"casual":       Lifestyle,
	"white":        Studio,
	"packshot":     Studio,
	"catalog":      Studio,
	"catalogue":    Studio,
	"magazine":     Editorial,
	"fashion":      Editorial,
	"ad":           Commercial,
	"advertising":  Commercial,
	"art":          Artistic,
	"luxury":       Elegant,
	"retro":        Vintage,
	"minimal":      Modern,
	"minimalist":   Modern,
	"contemporary": Modern,
	"traditional":  Cultural,
	"heritage":     Cultural,
	"ethnic":       Cultural,
}

// Styles returns every defined style in display order.
func Styles() []Style {
	return append([]Style(nil), styles...)
}

// Valid reports whether s is a defined style.
func (s Style) Valid() bool {
	for _, v := range styles {
		if v == s {
			return true
		}
	}
	return false
}

// ParseStyle resolves a style name or alias. Unknown input yields
// DefaultStyle.
func ParseStyle(s string) Style {
	key := strings.ToLower(strings.TrimSpace(s))
	if st := Style(key); st.Valid() {
		return st
	}
	if st, ok := styleAliases[key]; ok {
		return st
	}
	return DefaultStyle
}

// Package photoshoot holds the photoshoot concept table and compiles concepts
// into generation prompts.
package photoshoot

import (
	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
)

// Concept is the creative direction for one (category, style) pair.
// BasePrompt, Scenario, StyleModifiers and TechnicalSpec feed the compiled
// prompt; ModelType, Setting and Poses are used for human readable summaries.
type Concept struct {
	ModelType      string `json:"modelType"`
	Setting        string `json:"setting"`
	Poses          string `json:"poses"`
	BasePrompt     string `json:"basePrompt"`
	Scenario       string `json:"scenario"`
	StyleModifiers string `json:"styleModifiers"`
	TechnicalSpec  string `json:"technicalSpec"`
}

type conceptSet struct {
	fallback catalog.Style
	styles   map[catalog.Style]Concept
}

// Lookup resolves the concept for a category and style. Categories without
// an entry use the general set; styles missing from a set use that set's
// default style. It never fails.
func Lookup(c catalog.Category, s catalog.Style) Concept {
	set, ok := table[c]
	if !ok {
		set = table[catalog.General]
	}
	if concept, ok := set.styles[s]; ok {
		return concept
	}
	return set.styles[set.fallback]
}

// Has reports whether the table carries an explicit entry for c and s,
// without any fallback.
func Has(c catalog.Category, s catalog.Style) bool {
	set, ok := table[c]
	if !ok {
		return false
	}
	_, ok = set.styles[s]
	return ok
}

// StylesFor lists the styles with an explicit entry for c.
func StylesFor(c catalog.Category) []catalog.Style {
	set, ok := table[c]
	if !ok {
		return nil
	}
	var out []catalog.Style
	for _, s := range catalog.Styles() {
		if _, ok := set.styles[s]; ok {
			out = append(out, s)
		}
	}
	return out
}

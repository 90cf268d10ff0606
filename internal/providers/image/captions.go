package image

import (
	"fmt"

	"golang.org/x/text/language"
)

// captionLabels holds the fixed words local renderers put around concept
// data. Concept fields themselves stay as written in the concept table.
type captionLabels struct {
	concept string // %s is the product
	shoot   string // %s is the style
	style   string
	model   string
	setting string
	poses   string
	frame   string
	prompt  string
}

var (
	englishLabels = captionLabels{
		concept: "%s photoshoot concept",
		shoot:   "%s shoot",
		style:   "Style",
		model:   "Model",
		setting: "Setting",
		poses:   "Poses",
		frame:   "Frame",
		prompt:  "Prompt",
	}
	indonesianLabels = captionLabels{
		concept: "Konsep pemotretan %s",
		shoot:   "Sesi foto %s",
		style:   "Gaya",
		model:   "Model",
		setting: "Latar",
		poses:   "Pose",
		frame:   "Bingkai",
		prompt:  "Prompt",
	}
)

var captionTable = map[language.Base]captionLabels{
	language.MustParseBase("en"): englishLabels,
	language.MustParseBase("id"): indonesianLabels,
}

// labelsFor returns the labels for tag's base language, English otherwise.
func labelsFor(tag language.Tag) captionLabels {
	base, _ := tag.Base()
	if l, ok := captionTable[base]; ok {
		return l
	}
	return englishLabels
}

func labelLine(label, value string) string {
	return fmt.Sprintf("%s: %s", label, value)
}

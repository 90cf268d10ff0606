package photoshoot

import (
	"strings"
	"testing"

	"github.com/Ashis-Mishra07/genAi-sub000/internal/catalog"
	"github.com/Ashis-Mishra07/genAi-sub000/internal/domain"
)

func TestLookupIsTotal(t *testing.T) {
	for _, category := range catalog.All() {
		for _, style := range append(catalog.Styles(), catalog.Style(""), catalog.Style("unknown")) {
			concept := Lookup(category, style)
			fields := map[string]string{
				"ModelType":      concept.ModelType,
				"Setting":        concept.Setting,
				"Poses":          concept.Poses,
				"BasePrompt":     concept.BasePrompt,
				"Scenario":       concept.Scenario,
				"StyleModifiers": concept.StyleModifiers,
				"TechnicalSpec":  concept.TechnicalSpec,
			}
			for name, value := range fields {
				if strings.TrimSpace(value) == "" {
					t.Fatalf("Lookup(%q, %q).%s is empty", category, style, name)
				}
			}
		}
	}
}

func TestTableFallbacksExist(t *testing.T) {
	for category, set := range table {
		if !category.Valid() {
			t.Fatalf("table entry for unknown category %q", category)
		}
		if _, ok := set.styles[set.fallback]; !ok {
			t.Fatalf("category %q falls back to %q which has no entry", category, set.fallback)
		}
	}
	if len(StylesFor(catalog.General)) != len(catalog.Styles()) {
		t.Fatalf("general entry should define every style")
	}
}

func TestLookupFallbacks(t *testing.T) {
	if got, want := Lookup(catalog.Necklace, catalog.Vintage), Lookup(catalog.Necklace, catalog.Lifestyle); got != want {
		t.Fatalf("missing style should use the category default")
	}
	if Has(catalog.Coasters, catalog.Studio) {
		t.Fatalf("coasters should not have an explicit entry")
	}
	if got, want := Lookup(catalog.Coasters, catalog.Studio), Lookup(catalog.General, catalog.Studio); got != want {
		t.Fatalf("missing category should use the general entry for the same style")
	}
	if got, want := Lookup(catalog.Perfume, catalog.Cultural), Lookup(catalog.Perfume, catalog.Elegant); got != want {
		t.Fatalf("perfume should default to its elegant entry")
	}
}

func TestCompileOrder(t *testing.T) {
	concept := Concept{
		BasePrompt:     "BASE",
		Scenario:       "SCENE",
		StyleModifiers: "MODS",
		TechnicalSpec:  "TECH",
	}
	attrs := &domain.ProductAttributes{
		SpecificProductType: "temple necklace",
		Materials:           []string{"silver", " ", "garnet"},
		Colors:              []string{"red", "gold"},
		Culture:             "South Indian",
	}
	got := Compile(concept, attrs, "for a wedding")
	want := strings.Join([]string{
		"BASE",
		"specifically a temple necklace",
		"made from silver and garnet",
		"in red and gold colors",
		"with South Indian cultural elements",
		"for a wedding",
		"SCENE",
		"MODS",
		"TECH",
		QualitySuffix,
	}, ", ")
	if got != want {
		t.Fatalf("Compile() =\n%q\nwant\n%q", got, want)
	}
}

func TestCompileNonEmpty(t *testing.T) {
	concept := Lookup(catalog.General, catalog.Lifestyle)
	attrSets := []*domain.ProductAttributes{
		nil,
		{Colors: []string{"blue"}},
		{Materials: []string{"clay"}, Colors: []string{"ochre"}, Culture: "Rajasthani", SpecificProductType: "water pot"},
	}
	for _, attrs := range attrSets {
		for _, text := range []string{"", "anything"} {
			got := Compile(concept, attrs, text)
			if got == "" {
				t.Fatalf("Compile returned an empty prompt")
			}
			if !strings.HasSuffix(got, QualitySuffix) {
				t.Fatalf("prompt %q does not end with the quality suffix", got)
			}
			if strings.Contains(got, ", , ") {
				t.Fatalf("prompt %q contains an empty segment", got)
			}
		}
	}
	if got := Compile(Concept{}, nil, ""); !strings.HasSuffix(got, QualitySuffix) || strings.HasPrefix(got, ",") {
		t.Fatalf("zero concept prompt = %q", got)
	}
}

func TestCompileDeterministic(t *testing.T) {
	concept := Lookup(catalog.Saree, catalog.Cultural)
	attrs := &domain.ProductAttributes{Materials: []string{"silk"}}
	first := Compile(concept, attrs, "Kanjivaram")
	for i := 0; i < 3; i++ {
		if got := Compile(concept, attrs, "Kanjivaram"); got != first {
			t.Fatalf("Compile is not deterministic")
		}
	}
}

func TestNecklaceStudioScenario(t *testing.T) {
	category := catalog.Classify("elegant-necklace.jpg")
	if category != catalog.Necklace {
		t.Fatalf("category = %q, want necklace", category)
	}
	concept := Lookup(category, catalog.ParseStyle("studio"))
	if !strings.Contains(concept.ModelType, "jewelry") {
		t.Fatalf("modelType = %q, want it to mention jewelry", concept.ModelType)
	}
	prompt := Compile(concept, nil, "")
	for _, want := range []string{"necklace", "studio", QualitySuffix} {
		if !strings.Contains(prompt, want) {
			t.Fatalf("prompt %q missing %q", prompt, want)
		}
	}
}

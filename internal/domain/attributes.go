package domain

import (
	"fmt"
	"strings"
)

// ProductAttributes enriches a generation request. Every field is optional.
type ProductAttributes struct {
	Materials           []string `json:"materials,omitempty"`
	Colors              []string `json:"colors,omitempty"`
	Culture             string   `json:"culture,omitempty"`
	SpecificProductType string   `json:"specificProductType,omitempty"`
}

// IsZero reports whether no attribute carries a value.
func (a *ProductAttributes) IsZero() bool {
	if a == nil {
		return true
	}
	return len(CleanList(a.Materials)) == 0 &&
		len(CleanList(a.Colors)) == 0 &&
		strings.TrimSpace(a.Culture) == "" &&
		strings.TrimSpace(a.SpecificProductType) == ""
}

// Merge returns a copy of a where each empty field is filled from other.
// Values already present in a win.
func (a *ProductAttributes) Merge(other *ProductAttributes) *ProductAttributes {
	if a == nil && other == nil {
		return nil
	}
	out := &ProductAttributes{}
	if a != nil {
		*out = *a
	}
	if other == nil {
		return out
	}
	if len(CleanList(out.Materials)) == 0 {
		out.Materials = append([]string(nil), other.Materials...)
	}
	if len(CleanList(out.Colors)) == 0 {
		out.Colors = append([]string(nil), other.Colors...)
	}
	if strings.TrimSpace(out.Culture) == "" {
		out.Culture = other.Culture
	}
	if strings.TrimSpace(out.SpecificProductType) == "" {
		out.SpecificProductType = other.SpecificProductType
	}
	return out
}

// CleanList trims every entry and drops empty ones.
func CleanList(values []string) []string {
	var out []string
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Dimensions is the pixel size requested for an artifact.
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DefaultDimensions is used when a request carries no usable size.
var DefaultDimensions = Dimensions{Width: 1024, Height: 1024}

// Valid reports whether both sides are positive.
func (d Dimensions) Valid() bool {
	return d.Width > 0 && d.Height > 0
}

// OrDefault returns d when valid, DefaultDimensions otherwise.
func (d Dimensions) OrDefault() Dimensions {
	if d.Valid() {
		return d
	}
	return DefaultDimensions
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

package theme

import (
	"math"
	"math/big"
	"strconv"
	"strings"
	"time"
)

// GeneratorName is written to the "Generated by" header line.
const GeneratorName = "tailtheme"

// TimestampLayout is the ISO-8601 layout used in the header, always UTC.
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"

// DerivedRoles alias semantic roles to Tailwind palette colors or to
// variables declared in the same @theme block. They do not depend on the
// seed color.
//
// The dark form background points at the light surface variable. This
// mirrors the mapping the themes have always shipped with.
var DerivedRoles = []Variable{
	{Name: "--color-light-link", Value: "var(--color-blue-700)"},
	{Name: "--color-light-link-hover", Value: "var(--color-blue-800)"},
	{Name: "--color-light-link-visited", Value: "var(--color-purple-700)"},
	{Name: "--color-dark-link", Value: "var(--color-blue-300)"},
	{Name: "--color-dark-link-hover", Value: "var(--color-blue-200)"},
	{Name: "--color-dark-link-visited", Value: "var(--color-purple-300)"},
	{Name: "--color-light-form", Value: "var(--color-light-surface-container-highest)"},
	{Name: "--color-light-form-border", Value: "var(--color-light-outline)"},
	{Name: "--color-light-form-focus", Value: "var(--color-light-primary)"},
	{Name: "--color-dark-form", Value: "var(--color-light-surface-container-highest)"},
	{Name: "--color-dark-form-border", Value: "var(--color-dark-outline)"},
	{Name: "--color-dark-form-focus", Value: "var(--color-dark-primary)"},
}

// Emitter renders variants as a Tailwind @theme block.
type Emitter struct {
	Generator string
	Now       func() time.Time
}

// NewEmitter returns an emitter stamped with the wall clock.
func NewEmitter() *Emitter {
	return &Emitter{
		Generator: GeneratorName,
		Now:       time.Now,
	}
}

// GenerateThemeCSS renders variants with the default emitter.
func GenerateThemeCSS(variants []ThemeVariant, seed string, contrast float64) string {
	return NewEmitter().GenerateThemeCSS(variants, seed, contrast)
}

// GenerateThemeCSS returns the header comment followed by a single @theme
// block holding one declaration per flattened variable and the derived roles.
func (e *Emitter) GenerateThemeCSS(variants []ThemeVariant, seed string, contrast float64) string {
	generator := e.Generator
	if generator == "" {
		generator = GeneratorName
	}
	now := time.Now
	if e.Now != nil {
		now = e.Now
	}

	var builder strings.Builder

	builder.WriteString("/*\n")
	builder.WriteString(" * Generated by: " + generator + "\n")
	builder.WriteString(" * Generated at: " + now().UTC().Format(TimestampLayout) + "\n")
	builder.WriteString(" * Seed color  : " + seed + "\n")
	builder.WriteString(" * Contrast    : " + FormatContrast(contrast) + "\n")
	builder.WriteString(" */\n\n")

	builder.WriteString("@theme {\n")
	for _, v := range ConvertToVariables(variants) {
		writeDeclaration(&builder, v)
	}
	builder.WriteString("\n  /* Derived roles */\n")
	for _, v := range DerivedRoles {
		writeDeclaration(&builder, v)
	}
	builder.WriteString("}\n")

	return builder.String()
}

// FormatContrast formats contrast with exactly two decimals, keeping the
// sign. Ties round away from zero; a tie is judged on the exact binary
// value, so 0.015 (stored just below 0.015) gives "0.01".
func FormatContrast(contrast float64) string {
	if isHundredthsTie(contrast) {
		return strconv.FormatFloat(math.Round(contrast*100)/100, 'f', 2, 64)
	}
	return strconv.FormatFloat(contrast, 'f', 2, 64)
}

// isHundredthsTie reports whether contrast lies exactly halfway between
// two hundredths.
func isHundredthsTie(contrast float64) bool {
	if math.IsNaN(contrast) || math.IsInf(contrast, 0) {
		return false
	}
	scaled := new(big.Rat).SetFloat64(contrast)
	scaled.Mul(scaled, big.NewRat(100, 1))
	return scaled.Denom().Cmp(big.NewInt(2)) == 0
}

func writeDeclaration(builder *strings.Builder, v Variable) {
	builder.WriteString("  ")
	builder.WriteString(v.Name)
	builder.WriteString(": ")
	builder.WriteString(v.Value)
	builder.WriteString(";\n")
}

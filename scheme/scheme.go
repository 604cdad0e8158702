// Package scheme drives a perceptual color engine to build the light and
// dark token sets for a seed color.
package scheme

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"tailtheme/theme"
)

// Input errors. These alias the theme package sentinels.
var (
	ErrInvalidSeed     = theme.ErrInvalidSeed
	ErrInvalidContrast = theme.ErrInvalidContrast
)

// Engine is the perceptual color engine the generator drives.
type Engine interface {
	// SeedColor parses a hex seed into the engine's color value.
	SeedColor(hex string) (colorful.Color, error)
	// ConstructScheme builds the token source for one brightness.
	ConstructScheme(seed colorful.Color, brightness theme.Brightness, contrast float64) TokenSource
}

// TokenSource exposes the realized color of every role.
type TokenSource interface {
	Hex(role Role) string
}

// Generator turns a seed color into light and dark variants.
type Generator struct {
	engine Engine
}

// NewGenerator creates a generator backed by engine.
func NewGenerator(engine Engine) *Generator {
	return &Generator{engine: engine}
}

// Generate returns the light and dark variants, in that order, with tokens
// emitted in Roles order. The engine constructs exactly one scheme per
// brightness.
func (g *Generator) Generate(seedHex string, contrast float64) ([]theme.ThemeVariant, error) {
	if math.IsNaN(contrast) || contrast < -1 || contrast > 1 {
		return nil, fmt.Errorf("%w: %v", ErrInvalidContrast, contrast)
	}

	seed, err := g.engine.SeedColor(seedHex)
	if err != nil {
		if errors.Is(err, ErrInvalidSeed) {
			return nil, err
		}
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSeed, seedHex, err)
	}

	variants := make([]theme.ThemeVariant, 0, len(theme.Brightnesses))
	for _, brightness := range theme.Brightnesses {
		source := g.engine.ConstructScheme(seed, brightness, contrast)
		variants = append(variants, theme.ThemeVariant{
			Brightness: brightness,
			Colors:     Tokens(source),
		})
	}

	return variants, nil
}

// Tokens reads every role from source in Roles order.
func Tokens(source TokenSource) []theme.ColorToken {
	tokens := make([]theme.ColorToken, 0, len(Roles))
	for _, role := range Roles {
		tokens = append(tokens, theme.ColorToken{
			Name:  string(role),
			Value: source.Hex(role),
		})
	}
	return tokens
}

// ParseSeed parses a #RRGGBB seed, case-insensitively.
func ParseSeed(hex string) (colorful.Color, error) {
	if len(hex) != 7 || hex[0] != '#' || !isHexDigits(hex[1:]) {
		return colorful.Color{}, fmt.Errorf("%w %q: expected #RRGGBB", ErrInvalidSeed, hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w %q: %v", ErrInvalidSeed, hex, err)
	}
	return c, nil
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

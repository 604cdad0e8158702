// Package material implements scheme.Engine with the Material 3 palettes
// of cogentcore's matcolor package.
package material

import (
	"image/color"
	"math"

	"cogentcore.org/core/colors/matcolor"
	"github.com/lucasb-eyer/go-colorful"

	"tailtheme/scheme"
	"tailtheme/theme"
)

type paletteID int

const (
	primaryPalette paletteID = iota
	secondaryPalette
	tertiaryPalette
	errorPalette
	neutralPalette
	neutralVariantPalette
)

func (id paletteID) tones(p *matcolor.Palette) *matcolor.Tones {
	switch id {
	case secondaryPalette:
		return &p.Secondary
	case tertiaryPalette:
		return &p.Tertiary
	case errorPalette:
		return &p.Error
	case neutralPalette:
		return &p.Neutral
	case neutralVariantPalette:
		return &p.NeutralVariant
	default:
		return &p.Primary
	}
}

// roleSpec places a role on a palette. Roles with a background are
// foregrounds whose tone is moved relative to that background by contrast.
type roleSpec struct {
	palette    paletteID
	light      float64
	dark       float64
	background scheme.Role
}

var roleSpecs = map[scheme.Role]roleSpec{
	scheme.Primary:            {palette: primaryPalette, light: 40, dark: 80, background: scheme.Surface},
	scheme.OnPrimary:          {palette: primaryPalette, light: 100, dark: 20, background: scheme.Primary},
	scheme.PrimaryContainer:   {palette: primaryPalette, light: 90, dark: 30},
	scheme.OnPrimaryContainer: {palette: primaryPalette, light: 10, dark: 90, background: scheme.PrimaryContainer},
	scheme.InversePrimary:     {palette: primaryPalette, light: 80, dark: 40, background: scheme.InverseSurface},

	scheme.Secondary:            {palette: secondaryPalette, light: 40, dark: 80, background: scheme.Surface},
	scheme.OnSecondary:          {palette: secondaryPalette, light: 100, dark: 20, background: scheme.Secondary},
	scheme.SecondaryContainer:   {palette: secondaryPalette, light: 90, dark: 30},
	scheme.OnSecondaryContainer: {palette: secondaryPalette, light: 10, dark: 90, background: scheme.SecondaryContainer},

	scheme.Tertiary:            {palette: tertiaryPalette, light: 40, dark: 80, background: scheme.Surface},
	scheme.OnTertiary:          {palette: tertiaryPalette, light: 100, dark: 20, background: scheme.Tertiary},
	scheme.TertiaryContainer:   {palette: tertiaryPalette, light: 90, dark: 30},
	scheme.OnTertiaryContainer: {palette: tertiaryPalette, light: 10, dark: 90, background: scheme.TertiaryContainer},

	scheme.Error:            {palette: errorPalette, light: 40, dark: 80, background: scheme.Surface},
	scheme.OnError:          {palette: errorPalette, light: 100, dark: 20, background: scheme.Error},
	scheme.ErrorContainer:   {palette: errorPalette, light: 90, dark: 30},
	scheme.OnErrorContainer: {palette: errorPalette, light: 10, dark: 90, background: scheme.ErrorContainer},

	scheme.Background:              {palette: neutralPalette, light: 98, dark: 6},
	scheme.OnBackground:            {palette: neutralPalette, light: 10, dark: 90, background: scheme.Background},
	scheme.Surface:                 {palette: neutralPalette, light: 98, dark: 6},
	scheme.SurfaceDim:              {palette: neutralPalette, light: 87, dark: 6},
	scheme.SurfaceBright:           {palette: neutralPalette, light: 98, dark: 24},
	scheme.SurfaceContainerLowest:  {palette: neutralPalette, light: 100, dark: 4},
	scheme.SurfaceContainerLow:     {palette: neutralPalette, light: 96, dark: 10},
	scheme.SurfaceContainer:        {palette: neutralPalette, light: 94, dark: 12},
	scheme.SurfaceContainerHigh:    {palette: neutralPalette, light: 92, dark: 17},
	scheme.SurfaceContainerHighest: {palette: neutralPalette, light: 90, dark: 22},
	scheme.OnSurface:               {palette: neutralPalette, light: 10, dark: 90, background: scheme.Surface},
	scheme.SurfaceVariant:          {palette: neutralVariantPalette, light: 90, dark: 30},
	scheme.OnSurfaceVariant:        {palette: neutralVariantPalette, light: 30, dark: 80, background: scheme.SurfaceVariant},
	scheme.InverseSurface:          {palette: neutralPalette, light: 20, dark: 90},
	scheme.InverseOnSurface:        {palette: neutralPalette, light: 95, dark: 20, background: scheme.InverseSurface},
	scheme.SurfaceTint:             {palette: primaryPalette, light: 40, dark: 80},
	scheme.Outline:                 {palette: neutralVariantPalette, light: 50, dark: 60, background: scheme.Surface},
	scheme.OutlineVariant:          {palette: neutralVariantPalette, light: 80, dark: 30, background: scheme.Surface},
	scheme.Shadow:                  {palette: neutralPalette, light: 0, dark: 0},
	scheme.Scrim:                   {palette: neutralPalette, light: 0, dark: 0},

	scheme.PrimaryFixed:          {palette: primaryPalette, light: 90, dark: 90},
	scheme.PrimaryFixedDim:       {palette: primaryPalette, light: 80, dark: 80},
	scheme.OnPrimaryFixed:        {palette: primaryPalette, light: 10, dark: 10, background: scheme.PrimaryFixed},
	scheme.OnPrimaryFixedVariant: {palette: primaryPalette, light: 30, dark: 30, background: scheme.PrimaryFixed},

	scheme.SecondaryFixed:          {palette: secondaryPalette, light: 90, dark: 90},
	scheme.SecondaryFixedDim:       {palette: secondaryPalette, light: 80, dark: 80},
	scheme.OnSecondaryFixed:        {palette: secondaryPalette, light: 10, dark: 10, background: scheme.SecondaryFixed},
	scheme.OnSecondaryFixedVariant: {palette: secondaryPalette, light: 30, dark: 30, background: scheme.SecondaryFixed},

	scheme.TertiaryFixed:          {palette: tertiaryPalette, light: 90, dark: 90},
	scheme.TertiaryFixedDim:       {palette: tertiaryPalette, light: 80, dark: 80},
	scheme.OnTertiaryFixed:        {palette: tertiaryPalette, light: 10, dark: 10, background: scheme.TertiaryFixed},
	scheme.OnTertiaryFixedVariant: {palette: tertiaryPalette, light: 30, dark: 30, background: scheme.TertiaryFixed},
}

// Engine builds Material 3 schemes. The zero value is ready to use.
type Engine struct{}

// New returns a Material engine.
func New() *Engine {
	return &Engine{}
}

// SeedColor parses a #RRGGBB seed.
func (e *Engine) SeedColor(hex string) (colorful.Color, error) {
	return scheme.ParseSeed(hex)
}

// ConstructScheme resolves every role for one brightness.
func (e *Engine) ConstructScheme(seed colorful.Color, brightness theme.Brightness, contrast float64) scheme.TokenSource {
	palette := NewPalette(seed)
	dark := brightness == theme.Dark
	contrast = math.Max(-1, math.Min(1, contrast))

	s := &Scheme{
		Brightness: brightness,
		Contrast:   contrast,
		tokens:     make(map[scheme.Role]string, len(roleSpecs)),
	}
	for role, spec := range roleSpecs {
		tone := spec.tone(dark)
		if spec.background != "" {
			tone = adjustTone(tone, roleSpecs[spec.background].tone(dark), contrast)
		}
		c := spec.palette.tones(palette).AbsTone(int(math.Round(tone)))
		s.tokens[role] = toColorful(c).Hex()
	}

	return s
}

// NewPalette builds the Material key palettes for seed.
func NewPalette(seed colorful.Color) *matcolor.Palette {
	r, g, b := seed.Clamped().RGB255()
	return matcolor.NewPalette(matcolor.KeyFromPrimary(color.RGBA{R: r, G: g, B: b, A: 255}))
}

func (s roleSpec) tone(dark bool) float64 {
	if dark {
		return s.dark
	}
	return s.light
}

// Scheme is a realized set of role colors.
type Scheme struct {
	Brightness theme.Brightness
	Contrast   float64
	tokens     map[scheme.Role]string
}

// Hex returns the color of role as lowercase #rrggbb. Unknown roles
// return an empty string.
func (s *Scheme) Hex(role scheme.Role) string {
	return s.tokens[role]
}

// adjustTone moves a foreground tone away from its background for positive
// contrast and toward it for negative contrast.
func adjustTone(tone, background, contrast float64) float64 {
	if contrast == 0 {
		return tone
	}
	if contrast > 0 {
		target := 100.0
		if tone < background {
			target = 0
		}
		tone += (target - tone) * contrast * 0.5
	} else {
		tone += (background - tone) * -contrast * 0.3
	}
	return math.Max(0, math.Min(100, tone))
}

func toColorful(c color.RGBA) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

package scheme

import (
	"errors"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tailtheme/theme"
)

type construction struct {
	brightness theme.Brightness
	contrast   float64
}

// fakeEngine records constructions and returns fixed colors per brightness.
type fakeEngine struct {
	constructions []construction
	seedErr       error
}

func (f *fakeEngine) SeedColor(hex string) (colorful.Color, error) {
	if f.seedErr != nil {
		return colorful.Color{}, f.seedErr
	}
	return ParseSeed(hex)
}

func (f *fakeEngine) ConstructScheme(seed colorful.Color, brightness theme.Brightness, contrast float64) TokenSource {
	f.constructions = append(f.constructions, construction{brightness: brightness, contrast: contrast})
	return fakeSource{seed: seed, brightness: brightness}
}

type fakeSource struct {
	seed       colorful.Color
	brightness theme.Brightness
}

func (s fakeSource) Hex(role Role) string {
	if role == Primary && s.brightness == theme.Light {
		return "#1976D2"
	}
	if s.brightness == theme.Dark {
		return "#000000"
	}
	return "#ffffff"
}

func TestGenerateOrder(t *testing.T) {
	engine := &fakeEngine{}
	variants, err := NewGenerator(engine).Generate("#1976D2", 0.5)
	require.NoError(t, err)

	require.Len(t, variants, 2)
	assert.Equal(t, theme.Light, variants[0].Brightness)
	assert.Equal(t, theme.Dark, variants[1].Brightness)

	for _, variant := range variants {
		require.Len(t, variant.Colors, len(Roles))
		for i, role := range Roles {
			assert.Equal(t, string(role), variant.Colors[i].Name)
		}
	}
	assert.Equal(t, theme.ColorToken{Name: "primary", Value: "#1976D2"}, variants[0].Colors[0])
	assert.Equal(t, "onPrimary", variants[0].Colors[1].Name)
	assert.Equal(t, "primaryContainer", variants[0].Colors[2].Name)
}

func TestGenerateConstructsOncePerBrightness(t *testing.T) {
	engine := &fakeEngine{}
	_, err := NewGenerator(engine).Generate("#1976d2", -0.25)
	require.NoError(t, err)

	assert.Equal(t, []construction{
		{brightness: theme.Light, contrast: -0.25},
		{brightness: theme.Dark, contrast: -0.25},
	}, engine.constructions)
}

func TestGenerateEndToEndCSS(t *testing.T) {
	variants, err := NewGenerator(&fakeEngine{}).Generate("#1976D2", 0.5)
	require.NoError(t, err)

	css := theme.GenerateThemeCSS(variants, "#1976D2", 0.5)
	assert.Contains(t, css, "Contrast    : 0.50")
	assert.Contains(t, css, "@theme {")
	assert.Contains(t, css, "--color-light-primary: #1976D2;")
	assert.Contains(t, css, "--color-dark-surface-container-highest: #000000;")
}

func TestGenerateInvalidSeed(t *testing.T) {
	engine := &fakeEngine{}
	gen := NewGenerator(engine)

	for _, seed := range []string{"", "1976D2", "#1976D", "#1976D2FF", "#GGGGGG", "blue", "# 12345", "#1 2 3 ", "#12 345", "#12345 ", "#+12345"} {
		_, err := gen.Generate(seed, 0)
		assert.ErrorIs(t, err, ErrInvalidSeed, "seed %q", seed)
	}
	assert.Empty(t, engine.constructions)
}

func TestGenerateWrapsEngineSeedError(t *testing.T) {
	engine := &fakeEngine{seedErr: errors.New("unsupported")}
	_, err := NewGenerator(engine).Generate("#1976D2", 0)

	assert.ErrorIs(t, err, ErrInvalidSeed)
	assert.ErrorIs(t, err, theme.ErrInvalidSeed)
}

func TestGenerateInvalidContrast(t *testing.T) {
	gen := NewGenerator(&fakeEngine{})

	for _, c := range []float64{-1.01, 1.5, 10} {
		_, err := gen.Generate("#1976D2", c)
		assert.ErrorIs(t, err, ErrInvalidContrast, "contrast %v", c)
	}

	_, err := gen.Generate("#1976D2", 1)
	assert.NoError(t, err)
	_, err = gen.Generate("#1976D2", -1)
	assert.NoError(t, err)
}

func TestParseSeedRejectsNonHexDigits(t *testing.T) {
	for _, seed := range []string{"# 12345", "#1 2 3 ", "#12 345", "#-12345", "#0x1234"} {
		_, err := ParseSeed(seed)
		assert.ErrorIs(t, err, ErrInvalidSeed, "seed %q", seed)
	}
}

func TestParseSeedCaseInsensitive(t *testing.T) {
	upper, err := ParseSeed("#1976D2")
	require.NoError(t, err)
	lower, err := ParseSeed("#1976d2")
	require.NoError(t, err)

	assert.Equal(t, upper, lower)
	assert.Equal(t, "#1976d2", upper.Hex())
}

func TestRolesUnique(t *testing.T) {
	seen := make(map[Role]bool, len(Roles))
	for _, role := range Roles {
		assert.False(t, seen[role], "duplicate role %s", role)
		seen[role] = true
	}
	assert.Equal(t, Primary, Roles[0])
	assert.Equal(t, OnPrimary, Roles[1])
	assert.Equal(t, PrimaryContainer, Roles[2])
}

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseHeader(t *testing.T) {
	css := fixedEmitter().GenerateThemeCSS(sampleVariants(), "#1976D2", -0.25)

	header := ParseHeader(css)
	assert.Equal(t, "tailtheme", header.Generator)
	assert.True(t, fixedTime.Equal(header.GeneratedAt))
	assert.Equal(t, "#1976D2", header.Seed)
	assert.True(t, header.HasContrast)
	assert.InDelta(t, -0.25, header.Contrast, 1e-9)
}

func TestParseHeaderMissing(t *testing.T) {
	assert.Equal(t, Header{}, ParseHeader("@theme { --color-x: #fff; }"))
	assert.Equal(t, Header{}, ParseHeader("/* unterminated"))

	header := ParseHeader("/*\n * Seed color  : #abcdef\n * Contrast    : nope\n */")
	assert.Equal(t, "#abcdef", header.Seed)
	assert.False(t, header.HasContrast)
	assert.True(t, header.GeneratedAt.IsZero())
}

func TestParseThemeBlock(t *testing.T) {
	css := `/* header */
@theme {
  --color-light-primary: #1976D2;
  /* comment; with: punctuation */
  --color-dark-primary: #a8c7fa;
  not-a-variable: 1px;
}
.after { color: red; }`

	assert.Equal(t, []Variable{
		{Name: "--color-light-primary", Value: "#1976D2"},
		{Name: "--color-dark-primary", Value: "#a8c7fa"},
	}, ParseThemeBlock(css))
}

func TestParseThemeBlockMissing(t *testing.T) {
	assert.Nil(t, ParseThemeBlock(":root { --x: 1; }"))
	assert.Nil(t, ParseThemeBlock("@theme"))
}

package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleVariants() []ThemeVariant {
	return []ThemeVariant{
		{
			Brightness: Light,
			Colors: []ColorToken{
				{Name: "primary", Value: "#1976D2"},
				{Name: "onPrimary", Value: "#ffffff"},
				{Name: "primaryContainer", Value: "#d3e3fd"},
			},
		},
		{
			Brightness: Dark,
			Colors: []ColorToken{
				{Name: "primary", Value: "#a8c7fa"},
				{Name: "onPrimary", Value: "#062e6f"},
			},
		},
	}
}

func TestConvertToVariables(t *testing.T) {
	vars := ConvertToVariables(sampleVariants())

	assert.Equal(t, []Variable{
		{Name: "--color-light-primary", Value: "#1976D2"},
		{Name: "--color-light-on-primary", Value: "#ffffff"},
		{Name: "--color-light-primary-container", Value: "#d3e3fd"},
		{Name: "--color-dark-primary", Value: "#a8c7fa"},
		{Name: "--color-dark-on-primary", Value: "#062e6f"},
	}, vars)
}

func TestConvertToVariablesLength(t *testing.T) {
	variants := sampleVariants()
	want := 0
	for _, v := range variants {
		want += len(v.Colors)
	}
	assert.Len(t, ConvertToVariables(variants), want)
}

func TestConvertToVariablesKeepsVariantOrder(t *testing.T) {
	variants := sampleVariants()
	variants[0], variants[1] = variants[1], variants[0]

	vars := ConvertToVariables(variants)
	require.Len(t, vars, 5)
	assert.Equal(t, "--color-dark-primary", vars[0].Name)
	assert.Equal(t, "--color-light-primary", vars[2].Name)
}

func TestConvertToVariablesEmpty(t *testing.T) {
	assert.Empty(t, ConvertToVariables(nil))
	assert.Empty(t, ConvertToVariables([]ThemeVariant{}))
	assert.Empty(t, ConvertToVariables([]ThemeVariant{{Brightness: Light, Colors: []ColorToken{}}}))
}

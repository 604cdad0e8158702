package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKebabCase(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"primaryContainer", "primary-container"},
		{"Primary", "primary"},
		{"surfaceContainerHighest", "surface-container-highest"},
		{"onPrimaryFixedVariant", "on-primary-fixed-variant"},
		{"primary", "primary"},
		{"primary-container", "primary-container"},
		{"primary-Container", "primary-container"},
		{"surface1Dim", "surface1-dim"},
		{"RGB", "r-g-b"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, KebabCase(tt.in))
		})
	}
}

func TestKebabCaseIdempotent(t *testing.T) {
	inputs := []string{
		"primaryContainer", "Primary", "surfaceContainerHighest", "onError",
		"inverseOnSurface", "ABC", "a-b-c", "x", "Scrim", "outlineVariant2",
	}

	for _, in := range inputs {
		once := KebabCase(in)
		assert.Equal(t, once, KebabCase(once), "input %q", in)
	}
}

func TestVariableName(t *testing.T) {
	assert.Equal(t, "--color-light-primary-container", VariableName(Light, "primaryContainer"))
	assert.Equal(t, "--color-dark-on-surface", VariableName(Dark, "onSurface"))
	assert.Equal(t, "--color-dark-primary", VariableName(Dark, "Primary"))
}

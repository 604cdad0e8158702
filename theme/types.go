package theme

import "time"

// Brightness identifies one of the two generated variants.
type Brightness string

const (
	Light Brightness = "light"
	Dark  Brightness = "dark"
)

// Brightnesses lists the variants in emission order.
var Brightnesses = []Brightness{Light, Dark}

// ColorToken is a named semantic color role with its hex value.
type ColorToken struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ThemeVariant holds the ordered tokens generated for one brightness.
type ThemeVariant struct {
	Brightness Brightness   `json:"brightness"`
	Colors     []ColorToken `json:"colors"`
}

// Variable is a single flattened CSS custom property.
type Variable struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Header represents the metadata comment at the top of generated CSS.
type Header struct {
	Generator   string
	GeneratedAt time.Time
	Seed        string
	Contrast    float64
	HasContrast bool
}

// StyleContext receives custom properties during live application.
type StyleContext interface {
	SetProperty(name, value string)
}

package model

import "time"

// ThemeRecord describes a generated theme saved to disk.
type ThemeRecord struct {
	ID          string    `json:"id"`
	Seed        string    `json:"seed"`
	Contrast    float64   `json:"contrast"`
	GeneratedAt time.Time `json:"generated_at"`
	Path        string    `json:"path,omitempty"`
}

// Preset is a named seed/contrast pair offered by the preview server.
type Preset struct {
	Name     string  `json:"name" mapstructure:"name"`
	Display  string  `json:"display,omitempty" mapstructure:"display"`
	Seed     string  `json:"seed" mapstructure:"seed"`
	Contrast float64 `json:"contrast" mapstructure:"contrast"`
}

package theme

import "errors"

var (
	// ErrInvalidSeed is returned when a seed is not a #RRGGBB color.
	ErrInvalidSeed = errors.New("invalid seed color")
	// ErrInvalidContrast is returned when contrast is outside [-1, 1].
	ErrInvalidContrast = errors.New("contrast must be between -1 and 1")
	// ErrUnknownPreset is returned when a preset name is not configured.
	ErrUnknownPreset = errors.New("unknown preset")
)

package theme

import "sync"

// ApplyColorScheme sets every flattened variable directly on the style
// context, bypassing stylesheet generation. Empty input sets nothing.
func ApplyColorScheme(style StyleContext, variants []ThemeVariant) {
	for _, v := range ConvertToVariables(variants) {
		style.SetProperty(v.Name, v.Value)
	}
}

// RecordingStyle is an in-memory StyleContext that keeps every call.
type RecordingStyle struct {
	mu    sync.Mutex
	calls []Variable
}

// SetProperty records the property.
func (r *RecordingStyle) SetProperty(name, value string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, Variable{Name: name, Value: value})
}

// Calls returns a copy of the recorded properties in call order.
func (r *RecordingStyle) Calls() []Variable {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Variable(nil), r.calls...)
}

// Value returns the last value set for name.
func (r *RecordingStyle) Value(name string) (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].Name == name {
			return r.calls[i].Value, true
		}
	}
	return "", false
}

package api

import (
	"sync"

	"github.com/gorilla/websocket"

	"tailtheme/theme"
)

// Message types sent to preview clients.
const (
	MessageSetProperty = "set-property"
	MessageApplied     = "applied"
)

// PropertyMessage asks a preview client to set one custom property on its
// document root.
type PropertyMessage struct {
	Type  string `json:"type"`
	Name  string `json:"name,omitempty"`
	Value string `json:"value,omitempty"`
	Count int    `json:"count,omitempty"`
}

// LiveStyle is a theme.StyleContext that forwards every property to the
// connected preview clients. It remembers the latest value of each
// property so clients joining later can catch up.
type LiveStyle struct {
	ws *WSConnectionManager

	mu    sync.Mutex
	order []string
	props map[string]string
}

var _ theme.StyleContext = (*LiveStyle)(nil)

// NewLiveStyle creates a live style context broadcasting through ws.
func NewLiveStyle(ws *WSConnectionManager) *LiveStyle {
	return &LiveStyle{
		ws:    ws,
		props: make(map[string]string),
	}
}

// SetProperty records the property and broadcasts it.
func (l *LiveStyle) SetProperty(name, value string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.props[name]; !ok {
		l.order = append(l.order, name)
	}
	l.props[name] = value
	l.ws.Broadcast(PropertyMessage{Type: MessageSetProperty, Name: name, Value: value})
}

// Attach sends the current properties to conn and then registers it for
// broadcasts. Both happen under the style lock, so no property set in
// between can be overtaken by an older snapshot value.
func (l *LiveStyle) Attach(conn *websocket.Conn) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, name := range l.order {
		msg := PropertyMessage{Type: MessageSetProperty, Name: name, Value: l.props[name]}
		if err := conn.WriteJSON(msg); err != nil {
			return 0, err
		}
	}
	if len(l.order) > 0 {
		if err := conn.WriteJSON(PropertyMessage{Type: MessageApplied, Count: len(l.order)}); err != nil {
			return 0, err
		}
	}
	l.ws.Add(conn)
	return len(l.order), nil
}

// Snapshot returns the current properties in first-set order.
func (l *LiveStyle) Snapshot() []theme.Variable {
	l.mu.Lock()
	defer l.mu.Unlock()

	vars := make([]theme.Variable, 0, len(l.order))
	for _, name := range l.order {
		vars = append(vars, theme.Variable{Name: name, Value: l.props[name]})
	}
	return vars
}

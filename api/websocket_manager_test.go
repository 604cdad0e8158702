package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcastDropsClosedConnections(t *testing.T) {
	m := NewWSConnectionManager(zerolog.Nop())
	upgrader := websocket.Upgrader{}

	serverConns := make(chan *websocket.Conn, 2)
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		m.Add(conn)
		serverConns <- conn
	}))
	defer ts.Close()

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	alive, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer alive.Close()
	<-serverConns

	gone, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	goneServer := <-serverConns
	require.Equal(t, 2, m.Count())

	gone.Close()
	goneServer.Close()

	m.Broadcast(PropertyMessage{Type: MessageSetProperty, Name: "--color-light-primary", Value: "#000000"})
	assert.Equal(t, 1, m.Count())

	require.NoError(t, alive.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg PropertyMessage
	require.NoError(t, alive.ReadJSON(&msg))
	assert.Equal(t, "--color-light-primary", msg.Name)
}

func TestLiveStyleSnapshotKeepsFirstSetOrder(t *testing.T) {
	live := NewLiveStyle(NewWSConnectionManager(zerolog.Nop()))
	live.SetProperty("--a", "1")
	live.SetProperty("--b", "2")
	live.SetProperty("--a", "3")

	snapshot := live.Snapshot()
	require.Len(t, snapshot, 2)
	assert.Equal(t, "--a", snapshot[0].Name)
	assert.Equal(t, "3", snapshot[0].Value)
	assert.Equal(t, "--b", snapshot[1].Name)
}

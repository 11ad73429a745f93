package monitor

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dial(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func readSnapshot(t *testing.T, conn *websocket.Conn) Snapshot {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var snap Snapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	return snap
}

func TestPublishBroadcasts(t *testing.T) {
	s := NewServer()
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	s.Publish(Snapshot{Model: "duck.glb", Vertices: 2399, Triangles: 4212, FPS: 60})

	snap := readSnapshot(t, conn)
	assert.Equal(t, "duck.glb", snap.Model)
	assert.Equal(t, 2399, snap.Vertices)
	assert.Equal(t, 4212, snap.Triangles)
}

func TestNewClientGetsLastSnapshot(t *testing.T) {
	s := NewServer()
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	s.Publish(Snapshot{Model: "helmet.glb", Selected: "visor", Opacity: 0.5})

	// Connecting after the publish still sees the state.
	conn := dial(t, srv)
	snap := readSnapshot(t, conn)
	assert.Equal(t, "helmet.glb", snap.Model)
	assert.Equal(t, "visor", snap.Selected)
	assert.Equal(t, float32(0.5), snap.Opacity)
}

func TestDroppedClientIsEvicted(t *testing.T) {
	s := NewServer()
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	conn := dial(t, srv)
	require.Eventually(t, func() bool { return s.ClientCount() == 1 },
		2*time.Second, 10*time.Millisecond)

	conn.Close()
	// The read loop notices the closed connection without any publish.
	require.Eventually(t, func() bool { return s.ClientCount() == 0 },
		2*time.Second, 10*time.Millisecond)
}

func TestStatusPage(t *testing.T) {
	s := NewServer()
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}

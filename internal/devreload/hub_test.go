package devreload

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dialHub(t *testing.T, srv *httptest.Server) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func TestHub_BroadcastReachesSubscribers(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	t.Cleanup(hub.Close)
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	first := dialHub(t, srv)
	second := dialHub(t, srv)

	// The server registers a subscription after the handshake; wait for both.
	require.Eventually(t, func() bool {
		hub.mu.Lock()
		defer hub.mu.Unlock()
		return len(hub.conns) == 2
	}, 2*time.Second, 10*time.Millisecond)

	hub.Broadcast(Event{Event: "swap", Component: "org_table", Revision: "r1"})

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		var ev Event
		require.NoError(t, conn.ReadJSON(&ev))
		assert.Equal(t, "swap", ev.Event)
		assert.Equal(t, "org_table", ev.Component)
		assert.Equal(t, "r1", ev.Revision)
	}
}

func TestHub_DisconnectedClientIsDropped(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	t.Cleanup(hub.Close)
	srv := httptest.NewServer(hub)
	t.Cleanup(srv.Close)

	conn := dialHub(t, srv)
	require.NoError(t, conn.Close())

	// Both broadcasts must survive the dead connection.
	hub.Broadcast(Event{Event: "swap", Component: "a", Revision: "r1"})
	hub.Broadcast(Event{Event: "swap", Component: "b", Revision: "r2"})
}

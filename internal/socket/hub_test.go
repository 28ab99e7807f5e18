package socket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

type wsPair struct {
	server *websocket.Conn
	client *websocket.Conn
}

// dialPair yields both ends of a websocket connection so tests can register
// the server side in the hub and read on the client side.
func dialPair(t *testing.T) wsPair {
	t.Helper()

	upgrader := websocket.Upgrader{}
	conns := make(chan *websocket.Conn, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade failed: %v", err)
			return
		}
		conns <- conn
	}))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	client, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial failed: %v", err)
	}
	t.Cleanup(func() { client.Close() })

	select {
	case server := <-conns:
		return wsPair{server: server, client: client}
	case <-time.After(2 * time.Second):
		t.Fatal("server side connection never arrived")
		return wsPair{}
	}
}

func TestHubSendReachesRegisteredClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	key := ClientKey("DRIVER", "d-1")

	pair := dialPair(t)
	hub.Register(key, pair.server)

	if err := hub.Send(key, []byte("hello")); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	pair.client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := pair.client.ReadMessage()
	if err != nil {
		t.Fatalf("client never received the message: %v", err)
	}
	if string(msg) != "hello" {
		t.Fatalf("expected %q, got %q", "hello", string(msg))
	}
}

func TestHubSendOfflineClientIsNotAnError(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	if err := hub.Send(ClientKey("DRIVER", "nobody"), []byte("x")); err != nil {
		t.Fatalf("offline client must not error: %v", err)
	}
}

// A reconnect registers a second connection under the same key; the evicted
// connection's cleanup must not remove the replacement from the hub.
func TestHubStaleUnregisterKeepsReconnectedClient(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	key := ClientKey("DRIVER", "d-1")

	first := dialPair(t)
	second := dialPair(t)

	hub.Register(key, first.server)
	hub.Register(key, second.server)

	// The first connection's read loop notices the close and cleans up.
	hub.Unregister(key, first.server)

	if err := hub.Send(key, []byte("after reconnect")); err != nil {
		t.Fatalf("send failed: %v", err)
	}

	second.client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, msg, err := second.client.ReadMessage()
	if err != nil {
		t.Fatalf("reconnected client never received the notification: %v", err)
	}
	if string(msg) != "after reconnect" {
		t.Fatalf("expected %q, got %q", "after reconnect", string(msg))
	}

	// The reconnected connection's own cleanup still removes it.
	hub.Unregister(key, second.server)
	if err := hub.Send(key, []byte("gone")); err != nil {
		t.Fatalf("send after unregister should be a no-op: %v", err)
	}
}

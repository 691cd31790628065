package overlay

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/banshee-data/track-overlay/internal/palette"
)

// fakeAgent is an in-process overlay agent: it records every command it
// receives and acknowledges each one, optionally rejecting a named op.
type fakeAgent struct {
	mu       sync.Mutex
	commands []command

	rejectOp  string
	rejectMsg string
}

func (a *fakeAgent) received() []command {
	a.mu.Lock()
	defer a.mu.Unlock()
	out := make([]command, len(a.commands))
	copy(out, a.commands)
	return out
}

func (a *fakeAgent) handler(t *testing.T) http.HandlerFunc {
	upgrader := websocket.Upgrader{}
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		defer conn.Close()

		for {
			var cmd command
			if err := conn.ReadJSON(&cmd); err != nil {
				return
			}
			a.mu.Lock()
			a.commands = append(a.commands, cmd)
			reply := ack{OK: true}
			if a.rejectOp == cmd.Op {
				reply = ack{OK: false, Error: a.rejectMsg}
			}
			a.mu.Unlock()
			if err := conn.WriteJSON(reply); err != nil {
				return
			}
		}
	}
}

func newTestAgent(t *testing.T, agent *fakeAgent) *Client {
	t.Helper()

	server := httptest.NewServer(agent.handler(t))
	t.Cleanup(server.Close)

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	client, err := Dial(url)
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	return client
}

func TestClientCommands(t *testing.T) {
	t.Parallel()

	agent := &fakeAgent{}
	client := newTestAgent(t, agent)

	require.NoError(t, client.Clear())
	require.NoError(t, client.SetColor(palette.RGB{R: 0x00, G: 0x00, B: 0xFF}))
	require.NoError(t, client.MoveTo(0.25, 0.75))
	require.NoError(t, client.LineTo(0.5, 0.75))
	require.NoError(t, client.DrawPath())
	require.NoError(t, client.Commit(0))

	cmds := agent.received()
	require.Len(t, cmds, 6)
	assert.Equal(t, "clear", cmds[0].Op)
	assert.Equal(t, command{Op: "color", B: 0xFF}, cmds[1])
	assert.Equal(t, command{Op: "move", X: 0.25, Y: 0.75}, cmds[2])
	assert.Equal(t, command{Op: "line", X: 0.5, Y: 0.75}, cmds[3])
	assert.Equal(t, "draw", cmds[4].Op)
	assert.Equal(t, command{Op: "commit", Surface: 0}, cmds[5])
}

func TestClientRejectedCommand(t *testing.T) {
	t.Parallel()

	agent := &fakeAgent{rejectOp: "line", rejectMsg: "protocol not available"}
	client := newTestAgent(t, agent)

	require.NoError(t, client.MoveTo(0.1, 0.1))
	err := client.LineTo(0.2, 0.2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "protocol not available")
}

func TestClientDialFailure(t *testing.T) {
	t.Parallel()

	_, err := Dial("ws://127.0.0.1:1/overlay")
	assert.Error(t, err)
}

func TestClientReadAckFailure(t *testing.T) {
	t.Parallel()

	// An agent that closes without acknowledging makes the command fail.
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		require.NoError(t, err)
		var cmd command
		_ = conn.ReadJSON(&cmd)
		conn.Close()
	}))
	t.Cleanup(server.Close)

	client, err := Dial("ws" + strings.TrimPrefix(server.URL, "http"))
	require.NoError(t, err)
	t.Cleanup(func() { client.Close() })

	assert.Error(t, client.Clear())
}

package run

import (
	"bytes"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrexodia/devdocs-cli/pkg/bus"
	"github.com/mrexodia/devdocs-cli/pkg/pico/protocol"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("DEVDOCS_CONFIG", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("DEVDOCS_HOST_ADDRESS", "")

	cmd := NewRunCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{}, args...))
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestNewRunCommand(t *testing.T) {
	cmd := NewRunCommand()

	require.NotNil(t, cmd)
	assert.Equal(t, "run <command> [argument...]", cmd.Use)
	assert.NotNil(t, cmd.Flags().Lookup("host"))
	assert.NotNil(t, cmd.Flags().Lookup("session"))
}

func TestRunCommand_PrintsDispatchedMessage(t *testing.T) {
	out, _, err := execute(t, "/epic-create", "payments-v2", "refactor")
	require.NoError(t, err)

	var msg bus.Message
	require.NoError(t, json.Unmarshal([]byte(out), &msg))
	assert.Contains(t, msg.Content, "Create a new epic for: payments-v2 refactor")
	assert.Equal(t, "devdocs", msg.CustomType)
	assert.True(t, msg.Display)
	assert.True(t, msg.TriggerTurn)
	assert.NotEmpty(t, msg.ID)
}

func TestRunCommand_MissingArgumentWarns(t *testing.T) {
	out, errOut, err := execute(t, "epic-create")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage: /epic-create <description>")
}

func TestRunCommand_UnknownCommand(t *testing.T) {
	_, _, err := execute(t, "nonexistent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command /nonexistent")
}

func closedAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestRunCommand_HostUnreachableFails(t *testing.T) {
	addr := closedAddr(t)

	out, _, err := execute(t, "--host", addr, "epic-create", "payments-v2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deliver message")
	assert.Contains(t, err.Error(), addr)
	assert.Empty(t, out)
}

func TestRunCommand_HostReceivesEnvelope(t *testing.T) {
	received := make(chan protocol.Message, 1)
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		var msg protocol.Message
		if err := conn.ReadJSON(&msg); err == nil {
			received <- msg
		}
	}))
	defer srv.Close()

	_, _, err := execute(t, "--host", strings.TrimPrefix(srv.URL, "http://"), "--session", "s1", "devdocs-status")
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, protocol.TypeMessageSend, msg.Type)
		assert.Equal(t, "s1", msg.SessionID)
		assert.Equal(t, true, msg.Payload[protocol.PayloadTriggerTurn])
	case <-time.After(2 * time.Second):
		t.Fatal("host did not receive the instruction")
	}
}

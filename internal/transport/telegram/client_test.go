package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/reshetovitsme/slack-translate-relay/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "123456:test-token"

type sentMessage struct {
	chatID          string
	text            string
	replyParameters string
}

type fakeBotAPI struct {
	mu   sync.Mutex
	sent []sentMessage
}

func (f *fakeBotAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	switch {
	case strings.HasSuffix(r.URL.Path, "/getMe"):
		_, _ = w.Write([]byte(`{"ok": true, "result": {"id": 123456, "is_bot": true, "first_name": "Relay", "username": "relay_bot"}}`))
	case strings.HasSuffix(r.URL.Path, "/sendMessage"):
		_ = r.ParseMultipartForm(1 << 20)

		f.mu.Lock()
		f.sent = append(f.sent, sentMessage{
			chatID:          r.FormValue("chat_id"),
			text:            r.FormValue("text"),
			replyParameters: r.FormValue("reply_parameters"),
		})
		id := len(f.sent) + 40
		f.mu.Unlock()

		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok": true,
			"result": map[string]any{
				"message_id": id,
				"date":       1704196800,
				"chat":       map[string]any{"id": -100200300, "type": "channel"},
				"text":       r.FormValue("text"),
			},
		})
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"ok": false, "error_code": 404, "description": "Not Found"}`))
	}
}

func newTestClient(t *testing.T) (*Client, *fakeBotAPI) {
	t.Helper()

	api := &fakeBotAPI{}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)

	client, err := New(testToken, 0, bot.WithServerURL(server.URL))
	require.NoError(t, err)

	return client, api
}

func TestClient_Post(t *testing.T) {
	client, api := newTestClient(t)

	id, err := client.Post(context.Background(), "-100200300", "こんにちは", "")
	require.NoError(t, err)
	assert.Equal(t, "41", id)

	replyID, err := client.Post(context.Background(), "-100200300", "Original message: https://example.slack.com/x", id)
	require.NoError(t, err)
	assert.Equal(t, "42", replyID)

	require.Len(t, api.sent, 2)
	assert.Equal(t, "-100200300", api.sent[0].chatID)
	assert.Equal(t, "こんにちは", api.sent[0].text)
	assert.Empty(t, api.sent[0].replyParameters)

	var reply struct {
		MessageID int `json:"message_id"`
	}
	require.NoError(t, json.Unmarshal([]byte(api.sent[1].replyParameters), &reply))
	assert.Equal(t, 41, reply.MessageID)
}

func TestClient_Post_InvalidParent(t *testing.T) {
	client, api := newTestClient(t)

	_, err := client.Post(context.Background(), "-100200300", "reply", "1704196800.000100")

	assert.ErrorIs(t, err, errors.ErrInvalidParentTimestamp)
	assert.Empty(t, api.sent)
}

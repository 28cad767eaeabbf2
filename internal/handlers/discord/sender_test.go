package discord

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/KirkDiggler/judgebot/internal/services/alarm"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}

func newTestSession(t *testing.T, handler roundTripFunc) *discordgo.Session {
	t.Helper()

	session, err := NewSession("test-token")
	require.NoError(t, err)
	session.Client = &http.Client{Transport: handler}
	session.MaxRestRetries = 0
	return session
}

func TestChannelSender_SendChannelMessage(t *testing.T) {
	var gotPath string
	var gotBody map[string]any

	session := newTestSession(t, func(r *http.Request) (*http.Response, error) {
		gotPath = r.URL.Path
		raw, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(raw, &gotBody)
		return &http.Response{
			StatusCode: http.StatusOK,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"id":"1","channel_id":"3003","content":"hi"}`)),
			Request:    r,
		}, nil
	})

	sender, err := NewChannelSender(session)
	require.NoError(t, err)

	err = sender.SendChannelMessage(context.Background(), &alarm.SendChannelMessageInput{
		ChannelID: 3003,
		Content:   "Teemo has started playing League of Legends!",
	})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(gotPath, "/channels/3003/messages"), gotPath)
	assert.Equal(t, "Teemo has started playing League of Legends!", gotBody["content"])
}

func TestChannelSender_Failure(t *testing.T) {
	session := newTestSession(t, func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusForbidden,
			Header:     http.Header{"Content-Type": []string{"application/json"}},
			Body:       io.NopCloser(strings.NewReader(`{"message":"Missing Access","code":50001}`)),
			Request:    r,
		}, nil
	})

	sender, err := NewChannelSender(session)
	require.NoError(t, err)

	err = sender.SendChannelMessage(context.Background(), &alarm.SendChannelMessageInput{ChannelID: 1, Content: "x"})
	require.Error(t, err)

	var restErr *discordgo.RESTError
	assert.ErrorAs(t, err, &restErr)
}

func TestChannelSender_Validation(t *testing.T) {
	_, err := NewChannelSender(nil)
	assert.Error(t, err)

	sender, err := NewChannelSender(newTestSession(t, nil))
	require.NoError(t, err)
	assert.Error(t, sender.SendChannelMessage(context.Background(), nil))
}

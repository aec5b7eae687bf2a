package notification

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bookedEvent = TestimonialBooked{
	ClientName: "Ana",
	CoachName:  "Luis",
	TypeLabel:  "🎥 VÍDEO",
	Date:       "2026-03-11",
	NotionURL:  "https://notion.so/page-123",
	MediaURL:   "http://x/a.mp4",
}

func TestNotifyTestimonialBookedPostsBlocks(t *testing.T) {
	var got slackMessage
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	notifier := NewSlackNotifier(srv.URL)
	require.NoError(t, notifier.NotifyTestimonialBooked(context.Background(), bookedEvent))

	assert.Contains(t, got.Text, "Ana")
	require.Len(t, got.Blocks, 2)

	section := got.Blocks[0]
	assert.Equal(t, "section", section.Type)
	assert.Contains(t, section.Text.Text, "Ana")
	assert.Contains(t, section.Text.Text, "Luis")
	assert.Contains(t, section.Text.Text, "🎥 VÍDEO")
	assert.Contains(t, section.Text.Text, "2026-03-11")

	actions := got.Blocks[1]
	assert.Equal(t, "actions", actions.Type)
	require.Len(t, actions.Elements, 2)
	assert.Equal(t, "https://notion.so/page-123", actions.Elements[0].URL)
	assert.Equal(t, "http://x/a.mp4", actions.Elements[1].URL)
}

func TestNotifyTestimonialBookedNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	notifier := NewSlackNotifier(srv.URL)
	err := notifier.NotifyTestimonialBooked(context.Background(), bookedEvent)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "400")
}

func TestNotifyTestimonialBookedWithoutWebhook(t *testing.T) {
	notifier := NewSlackNotifier("")
	err := notifier.NotifyTestimonialBooked(context.Background(), bookedEvent)
	assert.Error(t, err)
}

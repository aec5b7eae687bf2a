package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// SlackNotifier posts Block Kit messages to an incoming webhook.
type SlackNotifier struct {
	WebhookURL string
	HTTPClient *http.Client
}

func NewSlackNotifier(webhookURL string) *SlackNotifier {
	return &SlackNotifier{
		WebhookURL: webhookURL,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type slackMessage struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string         `json:"type"`
	Text     *slackText     `json:"text,omitempty"`
	Elements []slackElement `json:"elements,omitempty"`
}

type slackText struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type slackElement struct {
	Type  string     `json:"type"`
	Text  *slackText `json:"text,omitempty"`
	URL   string     `json:"url,omitempty"`
	Style string     `json:"style,omitempty"`
}

// NotifyTestimonialBooked posts the booking summary to the team
// channel. A non-2xx response is returned as an error; callers decide
// whether to surface it (the booking path never does).
func (n *SlackNotifier) NotifyTestimonialBooked(ctx context.Context, event TestimonialBooked) error {
	if n.WebhookURL == "" {
		return fmt.Errorf("slack webhook URL is not configured")
	}

	summary := fmt.Sprintf(
		"📢 *¡Nuevo Testimonio Registrado!* \n\n*Detalles:* \n• *Cliente:* %s\n• *Coach:* %s\n• *Tipo:* %s\n• *Fecha programada en Notion:* %s",
		event.ClientName, event.CoachName, event.TypeLabel, event.Date,
	)

	msg := slackMessage{
		Text: fmt.Sprintf("🎥 *Nuevo Testimonio Registrado*: %s", event.ClientName),
		Blocks: []slackBlock{
			{
				Type: "section",
				Text: &slackText{Type: "mrkdwn", Text: summary},
			},
			{
				Type: "actions",
				Elements: []slackElement{
					{
						Type:  "button",
						Text:  &slackText{Type: "plain_text", Text: "Ver en Notion 📝"},
						URL:   event.NotionURL,
						Style: "primary",
					},
					{
						Type: "button",
						Text: &slackText{Type: "plain_text", Text: "Ver Material 📂"},
						URL:  event.MediaURL,
					},
				},
			},
		},
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to encode slack message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.WebhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build slack request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("slack request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return fmt.Errorf("slack returned status %d: %s", resp.StatusCode, snippet)
	}
	return nil
}

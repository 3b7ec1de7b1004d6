// Package notify delivers rendered release notes to a chat webhook.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Announcer posts announcements to a webhook URL. Payloads use the
// Slack-compatible {"text": ...} shape.
type Announcer struct {
	webhookURL string
	client     *http.Client
}

// NewAnnouncer creates an announcer for the given webhook URL.
func NewAnnouncer(webhookURL string) *Announcer {
	return &Announcer{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: defaultTimeout},
	}
}

type payload struct {
	Text string `json:"text"`
}

// Announce delivers text in a single request. There are no retries; a
// transport failure or non-2xx status is an error.
func (a *Announcer) Announce(ctx context.Context, text string) error {
	body, err := json.Marshal(payload{Text: text})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("deliver announcement: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("webhook returned %s", resp.Status)
	}
	return nil
}

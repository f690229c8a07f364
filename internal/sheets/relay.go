// Package sheets forwards submissions to a Google Apps Script webhook that
// mirrors them into a spreadsheet. Delivery is strictly best-effort: the
// caller only learns success or failure as a boolean and must never fail a
// submission because of it.
package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

type Relay struct {
	httpClient *http.Client
}

func NewRelay() *Relay {
	return &Relay{
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// Notify POSTs the flattened payload to the webhook URL. Any transport
// error or non-200 status is returned as an error; the caller decides to
// log and carry on.
func (r *Relay) Notify(ctx context.Context, webhookURL string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

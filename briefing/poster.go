package briefing

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/cquiroga/briefing-wizard/model"
)

// HTTPPoster delivers payloads to a submission endpoint over HTTP. It is the
// production Poster behind embedded wizards (kiosk mode, CLI intake).
type HTTPPoster struct {
	URL    string
	Client *http.Client
}

func (p HTTPPoster) Post(ctx context.Context, payload model.SubmissionPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.URL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := p.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit: unexpected status %d", resp.StatusCode)
	}
	return nil
}

// Package beacon sends the one-shot page view request to the visitor
// logging endpoint
package beacon

import (
	"bitwise74/visitor-api/internal/model"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const Path = "/api/log-visitor"

type Ack struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    model.Summary `json:"data"`
	Error   string        `json:"error"`
}

type Client struct {
	URL  string
	HTTP *http.Client
	Log  *zap.Logger
}

// New returns a client posting to baseURL + Path
func New(baseURL string) *Client {
	return &Client{
		URL:  strings.TrimRight(baseURL, "/") + Path,
		HTTP: &http.Client{Timeout: 10 * time.Second},
		Log:  zap.L(),
	}
}

// Send posts the beacon and decodes the acknowledgement
func (c *Client) Send(ctx context.Context) (*Ack, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build beacon request, %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send beacon, %w", err)
	}
	defer resp.Body.Close()

	var ack Ack
	if err := json.NewDecoder(resp.Body).Decode(&ack); err != nil {
		return nil, fmt.Errorf("failed to decode beacon response, %w", err)
	}

	return &ack, nil
}

// Fire sends the beacon in the background. The outcome is only logged;
// nothing is retried and nothing is reported to the caller.
func (c *Client) Fire(ctx context.Context) {
	go func() {
		ack, err := c.Send(ctx)
		if err != nil {
			c.Log.Error("Error logging visitor", zap.Error(err))
			return
		}

		if ack.Success {
			c.Log.Info("Visitor logged",
				zap.String("country", ack.Data.Country),
				zap.String("device", ack.Data.Device),
			)
		}
	}()
}

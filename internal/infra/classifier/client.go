package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bryanwahyu/scamshield/internal/domain/analysis"
)

const (
	analyzePath    = "/api/analyze"
	DefaultTimeout = 30 * time.Second
	maxBodyBytes   = 1 << 20
)

// Client talks to the remote risk-classification service.
type Client struct {
	Endpoint string
	HTTP     *http.Client
}

// NewClient builds a client with a bounded request timeout. timeout <= 0 uses DefaultTimeout.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		Endpoint: strings.TrimRight(endpoint, "/"),
		HTTP:     &http.Client{Timeout: timeout},
	}
}

var _ analysis.Classifier = (*Client)(nil)

type analyzeRequest struct {
	Text string `json:"text"`
}

// Classify posts text to <endpoint>/api/analyze. Every transport or protocol
// problem is reported as analysis.ErrClassifierUnavailable.
func (c *Client) Classify(ctx context.Context, text string) (analysis.RawVerdict, error) {
	if strings.TrimSpace(text) == "" {
		return analysis.RawVerdict{}, analysis.ErrEmptyInput
	}

	body, err := json.Marshal(analyzeRequest{Text: text})
	if err != nil {
		return analysis.RawVerdict{}, fmt.Errorf("%w: encode request: %v", analysis.ErrClassifierUnavailable, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint+analyzePath, bytes.NewReader(body))
	if err != nil {
		return analysis.RawVerdict{}, fmt.Errorf("%w: build request: %v", analysis.ErrClassifierUnavailable, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return analysis.RawVerdict{}, fmt.Errorf("%w: %v", analysis.ErrClassifierUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return analysis.RawVerdict{}, fmt.Errorf("%w: status %d: %s",
			analysis.ErrClassifierUnavailable, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}

	var v analysis.RawVerdict
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&v); err != nil {
		return analysis.RawVerdict{}, fmt.Errorf("%w: decode verdict: %v", analysis.ErrClassifierUnavailable, err)
	}
	return v, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTP == nil {
		return &http.Client{Timeout: DefaultTimeout}
	}
	return c.HTTP
}

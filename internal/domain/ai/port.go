package ai

import "context"

// Extractor is the optical text-extraction engine: image bytes in, best-effort text out.
type Extractor interface {
	ExtractText(ctx context.Context, image []byte, mimeType string) (string, error)
}

// Advisor explains a preliminary verdict in plain words.
type Advisor interface {
	Insight(ctx context.Context, text, status string, keywords []string) (string, error)
}

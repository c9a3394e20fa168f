package ai

import "errors"

// ErrQuotaExceeded indicates the AI provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("ai quota exceeded")

// ErrExtraction means image-to-text failed; callers fall back to an editable placeholder.
var ErrExtraction = errors.New("text extraction failed")

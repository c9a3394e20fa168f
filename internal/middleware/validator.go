package middleware

import (
	"errors"
	"fmt"
	"strings"

	domain "github.com/bryanwahyu/scamshield/internal/domain/history"
)

// Input validation utilities. Every error wraps ErrValidation so the router
// can answer 400.

var ErrValidation = errors.New("validation failed")

// MaxSearchTermLen caps history search terms.
const MaxSearchTermLen = 256

// MaxTextLen caps submitted message text.
const MaxTextLen = 20000

// ValidateScanType accepts "", "text" and "image"; empty means text.
func ValidateScanType(t string) (domain.ScanType, error) {
	if t == "" {
		return domain.TypeText, nil
	}
	st := domain.ScanType(strings.ToLower(t))
	if !st.Valid() {
		return "", fmt.Errorf("%w: invalid type %q (allowed: text, image)", ErrValidation, t)
	}
	return st, nil
}

// ValidateImage checks an upload's declared content type and size.
func ValidateImage(contentType string, size, maxBytes int64) error {
	if !strings.HasPrefix(strings.ToLower(contentType), "image/") {
		return fmt.Errorf("%w: file is not an image (content type %q)", ErrValidation, contentType)
	}
	if size <= 0 {
		return fmt.Errorf("%w: image is empty", ErrValidation)
	}
	if maxBytes > 0 && size > maxBytes {
		return fmt.Errorf("%w: image is %d bytes, limit is %d", ErrValidation, size, maxBytes)
	}
	return nil
}

// ValidateText bounds message size; emptiness is judged by the pipeline.
func ValidateText(text string) error {
	if len(text) > MaxTextLen {
		return fmt.Errorf("%w: text longer than %d bytes", ErrValidation, MaxTextLen)
	}
	if strings.ContainsRune(text, '\x00') {
		return fmt.Errorf("%w: text contains null bytes", ErrValidation)
	}
	return nil
}

// ValidateSearchTerm bounds history search terms.
func ValidateSearchTerm(term string) error {
	if len(term) > MaxSearchTermLen {
		return fmt.Errorf("%w: search term longer than %d bytes", ErrValidation, MaxSearchTermLen)
	}
	return nil
}

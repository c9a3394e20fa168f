package analysis

import "errors"

// ErrEmptyInput means there is no text to classify; callers block submission.
var ErrEmptyInput = errors.New("no text to classify")

// ErrClassifierUnavailable covers transport and protocol failures talking to the classifier.
var ErrClassifierUnavailable = errors.New("classifier unavailable")

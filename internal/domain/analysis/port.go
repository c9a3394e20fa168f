package analysis

import "context"

// Classifier port (remote risk service)
type Classifier interface {
	Classify(ctx context.Context, text string) (RawVerdict, error)
}

// Package embedding abstracts the external service that turns item
// photos into fixed-length feature vectors. The matching core only ever
// consumes the vectors; extraction runs once at report submission.
package embedding

import (
	"context"
)

// Provider is a long-lived collaborator: construct once at startup,
// inject wherever reports are created, Close on shutdown.
type Provider interface {
	Embed(ctx context.Context, imageURL string) ([]float64, error)
	Close() error
}

package interfaces

import (
	"context"
	"time"

	"builder_estimates/internal/domain/session"
)

// ISessionStore persists session data between requests.
//
// Load reports found=false for unknown or expired ids.

type ISessionStore interface {
	Load(ctx context.Context, id string) (data session.Data, found bool, err error)
	Save(ctx context.Context, id string, data session.Data, ttl time.Duration) error
	Delete(ctx context.Context, id string) error
}

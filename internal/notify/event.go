package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/heartmarshall/studio-backend/pkg/ctxutil"
)

// Event is one successful mutation to be announced.
type Event struct {
	Kind       Kind
	Operation  Operation
	Payload    Payload
	Actor      string
	OccurredAt time.Time
	Path       string
	Method     string
}

// NewEvent builds an event attributed to the caller stored in ctx.
func NewEvent(ctx context.Context, op Operation, p Payload) Event {
	return Event{
		Kind:       p.Kind(),
		Operation:  op,
		Payload:    p,
		Actor:      Actor(ctx),
		OccurredAt: time.Now(),
	}
}

// Actor describes who made the request: "username (email)" for an
// authenticated caller, otherwise the anonymous client address.
func Actor(ctx context.Context) string {
	if id, ok := ctxutil.IdentityFromCtx(ctx); ok {
		if id.Email == "" {
			return id.Username
		}
		return fmt.Sprintf("%s (%s)", id.Username, id.Email)
	}
	ip := ctxutil.ClientIPFromCtx(ctx)
	if ip == "" {
		ip = unknownValue
	}
	return fmt.Sprintf("匿名用户 (IP: %s)", ip)
}

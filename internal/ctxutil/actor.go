// Package ctxutil provides context utilities that can be safely imported anywhere.
// This package has no internal dependencies to avoid import cycles.
package ctxutil

import (
	"context"
	"fmt"
)

// ActorKey is the context key for the acting role.
type ActorKey struct{}

// Roles that act on work orders.
const (
	ActorCustomer = "customer"
	ActorManager  = "manager"
)

// WorkerActor names a worker acting on their own orders.
func WorkerActor(workerID int64) string {
	return fmt.Sprintf("worker:%d", workerID)
}

// WithActor returns a context carrying the acting role.
func WithActor(ctx context.Context, actor string) context.Context {
	return context.WithValue(ctx, ActorKey{}, actor)
}

// ActorFromContext returns the acting role, or "unknown" if not set.
func ActorFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(ActorKey{}).(string); ok && v != "" {
		return v
	}
	return "unknown"
}

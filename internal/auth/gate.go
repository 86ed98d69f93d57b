package auth

import (
	"context"
	"errors"
	"time"

	"admin-dashboard/internal/util"

	"go.uber.org/zap"
)

// ErrAuthTimeout is returned when no principal is resolved within the wait window
var ErrAuthTimeout = errors.New("authentication timed out waiting for principal")

// Principal is the authenticated identity resolved from the identity layer
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// IsAdmin reports whether the principal may use the admin surface
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == "admin"
}

// Provider is the identity-provider surface the gate depends on: a possibly
// not-yet-restored current principal plus auth-state change notifications.
type Provider interface {
	CurrentPrincipal() *Principal
	Subscribe() (<-chan *Principal, func())
}

// AuthGate gates data reads on auth readiness
type AuthGate interface {
	CurrentPrincipal() (*Principal, bool)
	AwaitPrincipal(ctx context.Context) (*Principal, error)
}

// Gate waits for the identity provider to restore a principal. Each
// AwaitPrincipal call installs and disposes its own subscription, so
// overlapping waits never leak.
type Gate struct {
	provider Provider
	timeout  time.Duration
	logger   *zap.Logger
}

// NewGate creates a gate with the given wait timeout
func NewGate(provider Provider, timeout time.Duration) *Gate {
	return &Gate{
		provider: provider,
		timeout:  timeout,
		logger:   util.NamedLogger("auth"),
	}
}

// CurrentPrincipal returns the already-restored principal, if any
func (g *Gate) CurrentPrincipal() (*Principal, bool) {
	p := g.provider.CurrentPrincipal()
	return p, p != nil
}

// AwaitPrincipal returns the current principal immediately if resolved,
// otherwise subscribes and resolves on the first non-nil notification.
// Fails with ErrAuthTimeout when the wait window elapses.
func (g *Gate) AwaitPrincipal(ctx context.Context) (*Principal, error) {
	if p, ok := g.CurrentPrincipal(); ok {
		return p, nil
	}

	util.AuthWaitsTotal.Inc()

	updates, unsubscribe := g.provider.Subscribe()
	defer unsubscribe()

	// The principal may have been restored between the check and the
	// subscription; re-check so the wait cannot miss it.
	if p, ok := g.CurrentPrincipal(); ok {
		return p, nil
	}

	timer := time.NewTimer(g.timeout)
	defer timer.Stop()

	for {
		select {
		case p := <-updates:
			if p != nil {
				return p, nil
			}
		case <-timer.C:
			util.AuthWaitTimeoutsTotal.Inc()
			g.logger.Warn("Auth wait timed out", zap.Duration("timeout", g.timeout))
			return nil, ErrAuthTimeout
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
}

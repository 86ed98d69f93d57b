package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"admin-dashboard/internal/redisclient"
	"admin-dashboard/internal/util"

	"go.uber.org/zap"
)

// SessionProvider resolves principals from the shared Redis session store.
// The identity layer materializes the dashboard's service session under a
// fixed token after startup; until then CurrentPrincipal returns nil and
// subscribers are notified once the session appears.
type SessionProvider struct {
	redis        *redisclient.Client
	serviceToken string
	pollInterval time.Duration
	logger       *zap.Logger

	mu      sync.RWMutex
	current *Principal
	subs    map[int]chan *Principal
	nextSub int
}

// NewSessionProvider creates a provider watching the given service token
func NewSessionProvider(redis *redisclient.Client, serviceToken string) *SessionProvider {
	return &SessionProvider{
		redis:        redis,
		serviceToken: serviceToken,
		pollInterval: 250 * time.Millisecond,
		logger:       util.NamedLogger("auth"),
		subs:         make(map[int]chan *Principal),
	}
}

// Start polls the session store until the service session is restored, then
// publishes the principal to subscribers. Runs until ctx is cancelled.
func (sp *SessionProvider) Start(ctx context.Context) {
	ticker := time.NewTicker(sp.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if sp.CurrentPrincipal() != nil {
				return
			}
			p, err := sp.Resolve(ctx, sp.serviceToken)
			if err != nil {
				sp.logger.Warn("Service session lookup failed", zap.Error(err))
				continue
			}
			if p != nil {
				sp.setPrincipal(p)
				sp.logger.Info("Auth state restored", zap.String("principal_id", p.ID))
				return
			}
		}
	}
}

// Resolve looks up a session token and builds its principal. A missing role
// field defaults to "user" for accounts created before roles existed.
func (sp *SessionProvider) Resolve(ctx context.Context, token string) (*Principal, error) {
	fields, err := sp.redis.GetSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve session: %w", err)
	}
	if fields == nil {
		return nil, nil
	}

	role := fields["role"]
	if role == "" {
		role = "user"
	}

	return &Principal{
		ID:    fields["user_id"],
		Email: fields["email"],
		Role:  role,
	}, nil
}

// CurrentPrincipal returns the restored service principal, or nil
func (sp *SessionProvider) CurrentPrincipal() *Principal {
	sp.mu.RLock()
	defer sp.mu.RUnlock()
	return sp.current
}

// Subscribe registers for auth-state notifications. The returned func must
// be called to release the subscription.
func (sp *SessionProvider) Subscribe() (<-chan *Principal, func()) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	id := sp.nextSub
	sp.nextSub++

	ch := make(chan *Principal, 1)
	sp.subs[id] = ch

	return ch, func() {
		sp.mu.Lock()
		defer sp.mu.Unlock()
		delete(sp.subs, id)
	}
}

func (sp *SessionProvider) setPrincipal(p *Principal) {
	sp.mu.Lock()
	defer sp.mu.Unlock()

	sp.current = p
	for _, ch := range sp.subs {
		select {
		case ch <- p:
		default:
		}
	}
}

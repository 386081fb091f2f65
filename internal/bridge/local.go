// Package bridge provides the in-process implementation of the host
// bridge: a ping echo, the declared-but-unimplemented bulk recipe fetch,
// and a fan-out for messages pushed by the host.
package bridge

import (
	"context"
	"fmt"
	"sync"

	"github.com/hammamikhairi/koji/internal/domain"
	"github.com/hammamikhairi/koji/internal/logger"
)

// Compile-time interface check.
var _ domain.Bridge = (*Local)(nil)

// PingReply is what the host answers to Ping.
const PingReply = "pong from main"

// Local is a Bridge living in the same process. Safe for concurrent use.
type Local struct {
	mu       sync.RWMutex
	handlers []func(string)
	last     string
	log      *logger.Logger
}

// NewLocal creates a bridge with no subscribers.
func NewLocal(log *logger.Logger) *Local {
	return &Local{log: log}
}

// Ping answers with PingReply unless ctx is already done.
func (b *Local) Ping(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	b.log.Debug("ping")
	return PingReply, nil
}

// GetAll is not backed by any storage yet.
func (b *Local) GetAll(ctx context.Context) ([]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return nil, fmt.Errorf("recipes.getAll: %w", domain.ErrNotImplemented)
}

// OnMessage registers fn for every message published after the call.
func (b *Local) OnMessage(fn func(message string)) {
	if fn == nil {
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = append(b.handlers, fn)
}

// Publish delivers message to every subscriber, in subscription order,
// on the caller's goroutine.
func (b *Local) Publish(message string) {
	b.mu.Lock()
	b.last = message
	handlers := make([]func(string), len(b.handlers))
	copy(handlers, b.handlers)
	b.mu.Unlock()

	b.log.Debug("host message: %s", message)
	for _, fn := range handlers {
		fn(message)
	}
}

// LastMessage returns the most recently published message, if any.
func (b *Local) LastMessage() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.last
}

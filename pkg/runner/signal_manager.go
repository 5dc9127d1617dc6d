package runner

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// SignalManager ties a context to SIGINT and SIGTERM so a long run can be
// interrupted from the terminal.
type SignalManager struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewSignalManager creates a new manager and immediately starts listening for signals.
func NewSignalManager() *SignalManager {
	return NewSignalManagerWithParent(context.Background())
}

// NewSignalManagerWithParent is NewSignalManager deriving from parent.
func NewSignalManagerWithParent(parent context.Context) *SignalManager {
	sm := &SignalManager{}
	sm.ctx, sm.cancel = signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	return sm
}

// Context returns the signal context.
func (sm *SignalManager) Context() context.Context {
	return sm.ctx
}

// Stop permanently stops the signal listener.
func (sm *SignalManager) Stop() {
	if sm.cancel != nil {
		sm.cancel()
	}
}

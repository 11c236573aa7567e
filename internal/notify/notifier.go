// Package notify holds the operator notification state: a transient toast
// and the confirmation gate in front of destructive actions.
package notify

import (
	"context"
	"sync"
	"time"

	"github.com/myapplevix/store-backend/pkg/e"
)

// Kind classifies a toast message.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// DefaultToastTTL is how long a toast stays visible.
const DefaultToastTTL = 3 * time.Second

// Toast is the single visible operator message. A new Notify replaces the
// current one and restarts the clock; there is no queue.
type Toast struct {
	Message string
	Kind    Kind
}

// Coordinator runs two independent tracks: the toast track
// (Hidden -> Visible -> Hidden) and the confirmation track
// (Idle -> AwaitingConfirmation -> Idle). At most one toast and one pending
// confirmation exist at a time.
type Coordinator struct {
	mu sync.Mutex

	toast      Toast
	toastUntil time.Time

	pendingTarget string
	hasPending    bool

	ttl time.Duration
	now func() time.Time
}

func NewCoordinator(ttl time.Duration) *Coordinator {
	if ttl <= 0 {
		ttl = DefaultToastTTL
	}

	return &Coordinator{
		ttl: ttl,
		now: time.Now,
	}
}

// Notify makes a toast visible. Last write wins: a call while a toast is
// already visible replaces the message and restarts the delay.
func (c *Coordinator) Notify(message string, kind Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.toast = Toast{Message: message, Kind: kind}
	c.toastUntil = c.now().Add(c.ttl)
}

// Toast returns the currently visible toast, if any.
func (c *Coordinator) Toast() (Toast, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.toastUntil.IsZero() || !c.now().Before(c.toastUntil) {
		return Toast{}, false
	}

	return c.toast, true
}

// RequestConfirmation records the target of a pending destructive action.
// A second call replaces the pending target; there is at most one
// outstanding confirmation.
func (c *Coordinator) RequestConfirmation(targetID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendingTarget = targetID
	c.hasPending = true
}

// PendingTarget returns the target awaiting confirmation, if any.
func (c *Coordinator) PendingTarget() (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.pendingTarget, c.hasPending
}

// Confirm invokes action exactly once with the recorded target and returns
// the track to Idle. The track resets even when the action fails, matching
// the modal closing regardless of outcome.
func (c *Coordinator) Confirm(ctx context.Context, action func(ctx context.Context, targetID string) error) error {
	c.mu.Lock()
	if !c.hasPending {
		c.mu.Unlock()
		return e.ErrNoPendingConfirmation
	}

	target := c.pendingTarget
	c.pendingTarget = ""
	c.hasPending = false
	c.mu.Unlock()

	// The action runs outside the lock: it usually hits the database.
	return action(ctx, target)
}

// Cancel discards the pending target without side effects.
func (c *Coordinator) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.pendingTarget = ""
	c.hasPending = false
}

package notify

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myapplevix/store-backend/pkg/e"
)

// fakeClock drives the coordinator deterministically.
type fakeClock struct {
	current time.Time
}

func (c *fakeClock) now() time.Time { return c.current }

func (c *fakeClock) advance(d time.Duration) { c.current = c.current.Add(d) }

func newTestCoordinator() (*Coordinator, *fakeClock) {
	clock := &fakeClock{current: time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)}
	c := NewCoordinator(DefaultToastTTL)
	c.now = clock.now
	return c, clock
}

func TestToast_HiddenUntilNotified(t *testing.T) {
	c, _ := newTestCoordinator()

	_, visible := c.Toast()
	assert.False(t, visible)
}

func TestToast_AutoDismissAfterTTL(t *testing.T) {
	c, clock := newTestCoordinator()

	c.Notify("saved", KindSuccess)

	toast, visible := c.Toast()
	require.True(t, visible)
	assert.Equal(t, "saved", toast.Message)

	clock.advance(DefaultToastTTL - time.Millisecond)
	_, visible = c.Toast()
	assert.True(t, visible)

	clock.advance(time.Millisecond)
	_, visible = c.Toast()
	assert.False(t, visible)
}

func TestToast_LastWriteWinsAndRestartsClock(t *testing.T) {
	c, clock := newTestCoordinator()

	c.Notify("first", KindSuccess)
	clock.advance(2 * time.Second)
	c.Notify("second", KindError)

	// past the first toast's would-be deadline; only the second is shown
	clock.advance(2 * time.Second)
	toast, visible := c.Toast()
	require.True(t, visible)
	assert.Equal(t, "second", toast.Message)
	assert.Equal(t, KindError, toast.Kind)

	clock.advance(time.Second + time.Millisecond)
	_, visible = c.Toast()
	assert.False(t, visible)
}

func TestConfirm_InvokesActionExactlyOnceWithTarget(t *testing.T) {
	c, _ := newTestCoordinator()

	c.RequestConfirmation("x")

	var calls int
	var got string
	err := c.Confirm(context.Background(), func(ctx context.Context, targetID string) error {
		calls++
		got = targetID
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	assert.Equal(t, "x", got)

	_, pending := c.PendingTarget()
	assert.False(t, pending)
}

func TestConfirm_WithoutPendingIsAnError(t *testing.T) {
	c, _ := newTestCoordinator()

	err := c.Confirm(context.Background(), func(ctx context.Context, targetID string) error {
		t.Fatal("action must not run")
		return nil
	})

	assert.ErrorIs(t, err, e.ErrNoPendingConfirmation)
}

func TestConfirm_ResetsEvenWhenActionFails(t *testing.T) {
	c, _ := newTestCoordinator()

	c.RequestConfirmation("x")

	err := c.Confirm(context.Background(), func(ctx context.Context, targetID string) error {
		return errors.New("delete failed")
	})

	require.Error(t, err)
	_, pending := c.PendingTarget()
	assert.False(t, pending)
}

func TestCancel_DiscardsWithoutInvoking(t *testing.T) {
	c, _ := newTestCoordinator()

	c.RequestConfirmation("x")
	c.Cancel()

	err := c.Confirm(context.Background(), func(ctx context.Context, targetID string) error {
		t.Fatal("action must not run")
		return nil
	})
	assert.ErrorIs(t, err, e.ErrNoPendingConfirmation)
}

func TestRequestConfirmation_ReplacesPendingTarget(t *testing.T) {
	c, _ := newTestCoordinator()

	c.RequestConfirmation("first")
	c.RequestConfirmation("second")

	target, pending := c.PendingTarget()
	require.True(t, pending)
	assert.Equal(t, "second", target)
}

func TestTracks_AreIndependent(t *testing.T) {
	c, clock := newTestCoordinator()

	c.Notify("toast", KindSuccess)
	c.RequestConfirmation("x")

	clock.advance(DefaultToastTTL + time.Second)

	_, visible := c.Toast()
	assert.False(t, visible)

	target, pending := c.PendingTarget()
	assert.True(t, pending)
	assert.Equal(t, "x", target)
}

package realtime

import (
	"sync"
	"time"

	"daily-planner-api/internal/models"
)

// DefaultDismiss is how long a toast stays visible.
const DefaultDismiss = 2600 * time.Millisecond

// Toaster holds the single visible notification. Showing a new one replaces the current one and
// restarts the dismiss timer; a timer that belongs to a replaced notification does nothing.
type Toaster struct {
	mu         sync.Mutex
	dismiss    time.Duration
	current    *models.Notification
	generation uint64
	timer      *time.Timer
}

func NewToaster(dismiss time.Duration) *Toaster {
	if dismiss <= 0 {
		dismiss = DefaultDismiss
	}
	return &Toaster{dismiss: dismiss}
}

// Show makes n the visible notification.
func (t *Toaster) Show(n models.Notification) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.generation++
	gen := t.generation
	t.current = &n

	if t.timer != nil {
		t.timer.Stop()
	}
	t.timer = time.AfterFunc(t.dismiss, func() { t.expire(gen) })
}

func (t *Toaster) expire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return
	}
	t.current = nil
	t.timer = nil
}

// Current returns the visible notification.
func (t *Toaster) Current() (models.Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.current == nil {
		return models.Notification{}, false
	}
	return *t.current, true
}

// Dismiss hides the visible notification immediately.
func (t *Toaster) Dismiss() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.current = nil
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
}

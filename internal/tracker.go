package internal

import "fmt"

// Tracker holds the stack of running effects.
// The top of the stack is the active effect reads are attributed to.
type Tracker struct {
	tracking bool

	stack    []*Effect
	maxDepth int
}

func NewTracker(maxDepth int) *Tracker {
	return &Tracker{
		tracking: true,
		maxDepth: maxDepth,
	}
}

func (t *Tracker) RunWithEffect(e *Effect, fn func()) {
	if t.maxDepth > 0 && len(t.stack) >= t.maxDepth {
		panic(fmt.Errorf("%w: effect %d (%q) at depth %d", ErrMaxDepth, e.id, e.name, len(t.stack)))
	}

	prevTracking := t.tracking
	t.tracking = true
	t.stack = append(t.stack, e)

	defer func() {
		t.stack[len(t.stack)-1] = nil
		t.stack = t.stack[:len(t.stack)-1]
		t.tracking = prevTracking
	}()

	fn()
}

func (t *Tracker) RunUntracked(fn func()) {
	prev := t.tracking
	t.tracking = false
	defer func() { t.tracking = prev }()

	fn()
}

// Active returns the effect on top of the stack, or nil at depth 0.
func (t *Tracker) Active() *Effect {
	if len(t.stack) == 0 {
		return nil
	}

	return t.stack[len(t.stack)-1]
}

func (t *Tracker) Depth() int {
	return len(t.stack)
}

func (t *Tracker) ShouldTrack() bool {
	return t.tracking && len(t.stack) > 0
}

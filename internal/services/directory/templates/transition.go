package templates

import (
	"fmt"
	"time"
)

// Transition describes the staggered entrance applied to list items. The
// stylesheet owns the animation; components only publish each item's delay.
type Transition struct {
	Step     time.Duration
	Duration time.Duration
	OffsetPx int
}

// EnterTransition is the entrance used for user cards.
var EnterTransition = Transition{
	Step:     100 * time.Millisecond,
	Duration: 500 * time.Millisecond,
	OffsetPx: 20,
}

// Delay returns the entrance delay of the item at index.
func (t Transition) Delay(index int) time.Duration {
	if index < 0 {
		index = 0
	}
	return time.Duration(index) * t.Step
}

// Style returns the inline custom properties for the item at index.
func (t Transition) Style(index int) string {
	return fmt.Sprintf("--enter-delay: %dms; --enter-duration: %dms; --enter-offset: %dpx",
		t.Delay(index).Milliseconds(), t.Duration.Milliseconds(), t.OffsetPx)
}

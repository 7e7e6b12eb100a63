// Package scrollctl owns the authoritative scroll position: programmatic
// and user-driven updates, smooth scrollToIndex animation, direction and
// idle-class tracking, and velocity reporting via the velocity package.
package scrollctl

import (
	"math"
	"time"

	"github.com/vlist-engine/vlist/sizecache"
	"github.com/vlist-engine/vlist/velocity"
)

// Align selects how scrollToIndex positions the target item within the
// viewport.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// Direction is the sign of the most recent position delta.
type Direction int

const (
	DirectionNone Direction = iota
	DirectionDown
	DirectionUp
)

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	default:
		return "none"
	}
}

// DefaultIdleTimeout is how long after the last scroll the controller
// considers itself idle: it clears the scrolling class and zeroes
// velocity.
const DefaultIdleTimeout = 150 * time.Millisecond

// Controller owns scroll position, direction, idle state, and an
// optional in-flight smooth-scroll animation. It is driven by a Tick
// call for animation frames; it has no internal timer goroutine, so a
// caller (typically the render package's frame loop) supplies time.
type Controller struct {
	Cache          sizecache.Cache
	ContainerSize  float32
	IdleTimeout    time.Duration
	Wrap           bool
	velocityTracker *velocity.Tracker

	position  float32
	direction Direction
	scrolling bool
	lastMove  time.Time

	anim *animation
	// generation is incremented whenever an animation is started or
	// canceled, and a started animation records it. Cancellation takes
	// effect by clearing anim; Tick does not compare generations.
	generation uint64
}

type animation struct {
	generation uint64
	from       float32
	to         float32
	start      time.Time
	duration   time.Duration
}

// NewController constructs a Controller over cache. A non-positive
// idleTimeout falls back to DefaultIdleTimeout.
func NewController(cache sizecache.Cache, containerSize float32, idleTimeout time.Duration) *Controller {
	if idleTimeout <= 0 {
		idleTimeout = DefaultIdleTimeout
	}
	return &Controller{
		Cache:           cache,
		ContainerSize:   containerSize,
		IdleTimeout:     idleTimeout,
		velocityTracker: velocity.NewTracker(velocity.DefaultWindow, velocity.DefaultMinSamples, 200*time.Millisecond),
	}
}

// Position returns the current scroll position.
func (c *Controller) Position() float32 { return c.position }

// SetPosition writes position directly (e.g. from a wheel or drag
// handler), clamping to the valid range, updating direction and velocity,
// and canceling any in-flight smooth-scroll animation. at is the sample
// timestamp used for velocity tracking.
func (c *Controller) SetPosition(position float32, at time.Time) {
	c.cancelAnimationLocked()
	c.setPositionInternal(position, at)
}

func (c *Controller) setPositionInternal(position float32, at time.Time) {
	clamped := c.clamp(position)
	if clamped > c.position {
		c.direction = DirectionDown
	} else if clamped < c.position {
		c.direction = DirectionUp
	}
	c.position = clamped
	c.scrolling = true
	c.lastMove = at
	c.velocityTracker.Update(clamped, at)
}

func (c *Controller) clamp(position float32) float32 {
	maxPos := c.maxPosition()
	if position < 0 {
		return 0
	}
	if position > maxPos {
		return maxPos
	}
	return position
}

func (c *Controller) maxPosition() float32 {
	m := c.Cache.TotalSize() - c.ContainerSize
	if m < 0 {
		return 0
	}
	return m
}

// TargetForIndex computes the unclamped, then clamped, scroll position
// that would align item i according to align.
func (c *Controller) TargetForIndex(i int, align Align) float32 {
	total := c.Cache.Total()
	if total <= 0 {
		return 0
	}
	if c.Wrap {
		i = ((i % total) + total) % total
	} else {
		if i < 0 {
			i = 0
		}
		if i > total-1 {
			i = total - 1
		}
	}
	offset := c.Cache.Offset(i)
	size := c.Cache.Size(i)
	var target float32
	switch align {
	case AlignCenter:
		target = offset - (c.ContainerSize-size)/2
	case AlignEnd:
		target = offset - c.ContainerSize + size
	default:
		target = offset
	}
	return c.clamp(target)
}

// ScrollToIndex jumps (duration == 0) or smoothly animates (duration > 0)
// to the position aligning item i. Any in-flight animation is canceled
// first. Jump mode applies immediately; animation mode requires the
// caller to drive Tick.
func (c *Controller) ScrollToIndex(i int, align Align, duration time.Duration, at time.Time) {
	c.cancelAnimationLocked()
	target := c.TargetForIndex(i, align)
	if duration <= 0 {
		c.setPositionInternal(target, at)
		return
	}
	c.generation++
	c.anim = &animation{
		generation: c.generation,
		from:       c.position,
		to:         target,
		start:      at,
		duration:   duration,
	}
}

// CancelScroll cancels any in-flight smooth-scroll animation. The
// position is left wherever the animation last wrote it.
func (c *Controller) CancelScroll() {
	c.cancelAnimationLocked()
}

func (c *Controller) cancelAnimationLocked() {
	c.generation++
	c.anim = nil
}

// Animating reports whether a smooth-scroll animation is in flight.
func (c *Controller) Animating() bool {
	return c.anim != nil
}

// Tick advances any in-flight animation to time `at` using an
// ease-in-out-quad curve, writing the new position. It returns true if
// an animation was active and advanced (whether or not it just
// completed). Completing an animation clears it and snaps the position
// to the exact target, avoiding residual sub-pixel drift.
func (c *Controller) Tick(at time.Time) bool {
	if c.anim == nil {
		return false
	}
	a := c.anim
	elapsed := at.Sub(a.start)
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(a.duration)
	if t >= 1 {
		c.position = a.to
		c.scrolling = true
		c.lastMove = at
		c.velocityTracker.Update(c.position, at)
		c.anim = nil
		return true
	}
	eased := easeInOutQuad(t)
	pos := a.from + (a.to-a.from)*float32(eased)
	if dist := a.to - pos; dist < 1 && dist > -1 {
		c.position = a.to
		c.scrolling = true
		c.lastMove = at
		c.velocityTracker.Update(c.position, at)
		c.anim = nil
		return true
	}
	c.position = pos
	c.scrolling = true
	c.lastMove = at
	c.velocityTracker.Update(pos, at)
	return true
}

func easeInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Velocity returns the current scroll speed estimate and whether it is
// reliable.
func (c *Controller) Velocity() (float32, bool) {
	return c.velocityTracker.Velocity()
}

// AtTop reports whether the controller is scrolled to position 0.
func (c *Controller) AtTop() bool {
	return c.position <= 0
}

// AtBottom reports whether the controller is within threshold pixels of
// the maximum scroll position.
func (c *Controller) AtBottom(threshold float32) bool {
	return c.maxPosition()-c.position <= threshold
}

// Direction returns the sign of the most recent position delta.
func (c *Controller) Direction() Direction {
	return c.direction
}

// IsScrolling reports whether the controller considers itself actively
// scrolling (has not yet hit its idle timeout since the last move).
func (c *Controller) IsScrolling(now time.Time) bool {
	if !c.scrolling {
		return false
	}
	return now.Sub(c.lastMove) < c.IdleTimeout
}

// CheckIdle clears the scrolling flag and zeroes velocity if the idle
// timeout has elapsed since the last move. Callers should invoke this
// from the same frame loop driving Tick.
func (c *Controller) CheckIdle(now time.Time) {
	if c.scrolling && now.Sub(c.lastMove) >= c.IdleTimeout {
		c.scrolling = false
		c.direction = DirectionNone
		c.velocityTracker.Reset()
	}
}

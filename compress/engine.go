// Package compress implements the logical/physical scroll-position
// mapping used once a list's true content size exceeds a platform pixel
// ceiling for a single scroll container.
//
// gioui.org/f32.Affine2D encodes its transform coefficients as float32,
// whose mantissa holds 24 bits of precision: 1<<24 = 16,777,216 distinct
// representable integers before adjacent values start colliding. That
// number is this package's conservative default ceiling — the point past
// which a one-pixel physical scroll delta can no longer be trusted to
// correspond to a one-pixel logical delta.
package compress

// CompressionCeiling is the default platform ceiling on a scroll
// container's main-axis pixel size, derived from float32's 24-bit
// mantissa (see package doc).
const CompressionCeiling float32 = 1 << 24

// MomentumConfig tunes the exponential-decay momentum animation started
// after a touch flick. These are tuning constants, not invariants:
// callers are free to override them per list.
type MomentumConfig struct {
	// Friction is the per-tick velocity decay multiplier, in (0, 1).
	Friction float32
	// MinVelocity is the speed, in pixels/second, below which momentum
	// stops.
	MinVelocity float32
	// FlickVelocityThreshold is the minimum release velocity required to
	// start momentum at all.
	FlickVelocityThreshold float32
}

// DefaultMomentumConfig mirrors typical touch-flick feel. Friction is
// applied once per Tick, so at 60 ticks per second a flick at the 200
// px/s threshold falls below MinVelocity after about 51 ticks (~0.85s)
// and a 2000 px/s flick after about 96 ticks (~1.6s).
var DefaultMomentumConfig = MomentumConfig{
	Friction:               0.95,
	MinVelocity:            15,
	FlickVelocityThreshold: 200,
}

// Engine maps between logical scroll position (what items and index
// arithmetic use) and physical scroll position (what a native scroll
// container, or a custom scrollbar thumb, displays) once ActualSize
// exceeds Ceiling.
type Engine struct {
	ActualSize    float32
	ContainerSize float32
	Ceiling       float32
}

// NewEngine constructs an Engine. A non-positive ceiling falls back to
// CompressionCeiling.
func NewEngine(actualSize, containerSize, ceiling float32) *Engine {
	if ceiling <= 0 {
		ceiling = CompressionCeiling
	}
	return &Engine{ActualSize: actualSize, ContainerSize: containerSize, Ceiling: ceiling}
}

// IsCompressed reports whether the actual content size exceeds the
// ceiling, requiring logical/physical mapping.
func (e *Engine) IsCompressed() bool {
	return e.ActualSize > e.Ceiling
}

// Ratio returns the physical-to-logical compression ratio r = C /
// actualSize. When not compressed, r is 1 (no compression).
func (e *Engine) Ratio() float32 {
	if !e.IsCompressed() {
		return 1
	}
	return e.Ceiling / e.ActualSize
}

// ReportedTotalSize returns the main-axis size that should be set on the
// scroll container's content element: the true size when uncompressed,
// the ceiling otherwise.
func (e *Engine) ReportedTotalSize() float32 {
	if e.IsCompressed() {
		return e.Ceiling
	}
	return e.ActualSize
}

// MaxLogicalPosition returns the maximum valid logical scroll position.
func (e *Engine) MaxLogicalPosition() float32 {
	m := e.ActualSize - e.ContainerSize
	if m < 0 {
		return 0
	}
	return m
}

// ClampLogical clamps a logical position to [0, MaxLogicalPosition()].
func (e *Engine) ClampLogical(logical float32) float32 {
	max := e.MaxLogicalPosition()
	if logical < 0 {
		return 0
	}
	if logical > max {
		return max
	}
	return logical
}

// LogicalToPhysical maps a logical position to the physical position a
// scrollbar thumb (or, when uncompressed, the native scroll container)
// should display, by simple ratio scaling. Only meaningful for
// synthesizing the thumb position; actual index math must always use the
// logical value directly, never this mapping.
func (e *Engine) LogicalToPhysical(logical float32) float32 {
	return logical * e.Ratio()
}

// PhysicalToLogical inverts LogicalToPhysical, e.g. when a user drags the
// custom scrollbar thumb and the drag delta is expressed in physical
// pixels.
func (e *Engine) PhysicalToLogical(physical float32) float32 {
	r := e.Ratio()
	if r == 0 {
		return 0
	}
	return physical / r
}

// ApplyWheelDelta accumulates a wheel deltaY onto the current logical
// position and returns the clamped result. Compressed mode applies the
// delta directly to the logical position rather than writing the
// (nonexistent, in compressed mode) native scroll container.
func (e *Engine) ApplyWheelDelta(currentLogical, deltaY float32) float32 {
	return e.ClampLogical(currentLogical + deltaY)
}

// ItemTranslate returns the main-axis transform to apply to the element
// for the item at logical offset itemOffset, relative to the current
// logical viewport start. In compressed mode item transforms are always
// computed this way rather than against the (ceiling-sized) physical
// container.
func (e *Engine) ItemTranslate(itemOffset, logicalScrollPosition float32) float32 {
	return itemOffset - logicalScrollPosition
}

// TouchSession tracks a single touch-drag gesture's baseline so that
// touchmove deltas can be applied to the logical position with the drag
// direction inverted (natural-scroll semantics).
type TouchSession struct {
	baselineY       float32
	baselineLogical float32
	active          bool
}

// Start begins a touch session at physical y, recording the logical
// position it started from. Starting a new session implicitly abandons
// any previous one (callers must separately cancel momentum).
func (s *TouchSession) Start(y, currentLogical float32) {
	s.baselineY = y
	s.baselineLogical = currentLogical
	s.active = true
}

// Active reports whether a touch session is in progress.
func (s *TouchSession) Active() bool { return s.active }

// Move computes the new logical position for a touchmove to physical y,
// inverting the drag delta so dragging down (content follows the finger)
// decreases the logical scroll position. Move tolerates being called
// without a prior Start; in that case it returns currentLogical
// unchanged, modeling tolerance for a touchmove event with an empty
// touch list.
func (e *Engine) Move(s *TouchSession, y, currentLogical float32) float32 {
	if !s.active {
		return currentLogical
	}
	delta := y - s.baselineY
	return e.ClampLogical(s.baselineLogical - delta)
}

// End closes the touch session.
func (s *TouchSession) End() {
	s.active = false
}

// Momentum is a single exponential-decay animation following a touch
// flick: idle -> running -> idle. Cancel (called on a new touchstart or
// any other cancellation) clears the running flag, so the next Tick is a
// no-op. generation is bumped by each Start but is not consulted by Tick.
type Momentum struct {
	Config     MomentumConfig
	running    bool
	velocity   float32 // signed, px/sec, positive = increasing logical position
	generation uint64
}

// NewMomentum constructs a Momentum using cfg. A zero-value cfg is
// replaced with DefaultMomentumConfig.
func NewMomentum(cfg MomentumConfig) *Momentum {
	if cfg.Friction <= 0 || cfg.Friction >= 1 {
		cfg = DefaultMomentumConfig
	}
	return &Momentum{Config: cfg}
}

// Start begins momentum with the given release velocity if it exceeds
// FlickVelocityThreshold; otherwise it is a no-op and Running remains
// false.
func (m *Momentum) Start(releaseVelocity float32) {
	speed := releaseVelocity
	if speed < 0 {
		speed = -speed
	}
	if speed < m.Config.FlickVelocityThreshold {
		return
	}
	m.velocity = releaseVelocity
	m.running = true
	m.generation++
}

// Cancel stops any in-flight momentum. Safe to call when not running.
func (m *Momentum) Cancel() {
	m.running = false
	m.velocity = 0
}

// Running reports whether momentum is currently animating.
func (m *Momentum) Running() bool { return m.running }

// Tick advances momentum by dt seconds: decays velocity by Friction,
// applies v*dt to currentLogical, clamps, and stops once |v| falls below
// MinVelocity or the position clamps against a boundary.
func (m *Momentum) Tick(e *Engine, currentLogical float32, dtSeconds float32) (newLogical float32) {
	if !m.running {
		return currentLogical
	}
	m.velocity *= m.Config.Friction
	next := currentLogical + m.velocity*dtSeconds
	clamped := e.ClampLogical(next)

	speed := m.velocity
	if speed < 0 {
		speed = -speed
	}
	if speed < m.Config.MinVelocity || clamped != next {
		m.running = false
		m.velocity = 0
	}
	return clamped
}

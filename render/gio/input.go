package gio

import (
	"time"

	"gioui.org/gesture"
	"gioui.org/io/pointer"
	"gioui.org/layout"

	"github.com/vlist-engine/vlist/compress"
	"github.com/vlist-engine/vlist/scrollctl"
)

// Input claims wheel and touch-drag events for a list region, the Gio
// equivalent of the non-passive wheel listener spec.md describes for
// compressed mode: it intercepts pointer.Scroll/Press/Drag/Release
// before any native scroll region would consume them.
type Input struct {
	Scroll   gesture.Scroll
	Axis     layout.Axis
	Compress *compress.Engine
	Momentum *compress.Momentum
	touch    compress.TouchSession
}

// NewInput constructs an Input over the given compression engine. axis
// selects which axis the embedded gesture.Scroll claims.
func NewInput(ce *compress.Engine, axis layout.Axis) *Input {
	return &Input{
		Compress: ce,
		Momentum: compress.NewMomentum(compress.DefaultMomentumConfig),
		Axis:     axis,
	}
}

// Layout registers the scroll gesture's input op for this frame over the
// given clip area, returning the accumulated wheel distance for this
// frame (0 if none).
func (in *Input) Layout(gtx C) float32 {
	in.Scroll.Add(gtx.Ops)
	return float32(in.Scroll.Update(gtx.Metric, gtx.Queue, gtx.Now, in.Axis))
}

// HandleWheel applies a frame's accumulated wheel delta to the current
// logical position via the compression engine, canceling any in-flight
// momentum (a wheel event always takes precedence over a decaying
// flick).
func (in *Input) HandleWheel(currentLogical, deltaY float32) float32 {
	if deltaY == 0 {
		return currentLogical
	}
	in.Momentum.Cancel()
	return in.Compress.ApplyWheelDelta(currentLogical, deltaY)
}

// HandleTouchEvent dispatches one pointer.Event to the active touch
// session, mirroring spec.md's guard against a drag event with no
// associated pointer ID: a Move with no session active (no Press seen)
// is a no-op rather than a panic. ctl is the scroll controller whose
// velocity.Tracker supplies the release velocity handed to momentum,
// signed by ctl.Direction(). A Drag only returns the new position; the
// caller writes it with ctl.SetPosition, which is what feeds that
// tracker and the controller's direction.
func (in *Input) HandleTouchEvent(e pointer.Event, ctl *scrollctl.Controller) float32 {
	y := e.Position.Y
	if in.Axis == layout.Horizontal {
		y = e.Position.X
	}
	currentLogical := ctl.Position()
	switch e.Type {
	case pointer.Press:
		in.Momentum.Cancel()
		in.touch.Start(y, currentLogical)
		return currentLogical
	case pointer.Drag:
		return in.Compress.Move(&in.touch, y, currentLogical)
	case pointer.Release, pointer.Cancel:
		wasActive := in.touch.Active()
		in.touch.End()
		if wasActive {
			if v, ok := ctl.Velocity(); ok {
				// Velocity is a magnitude; Momentum expects a signed one.
				if ctl.Direction() == scrollctl.DirectionUp {
					v = -v
				}
				in.Momentum.Start(v)
			}
		}
		return currentLogical
	}
	return currentLogical
}

// TickMomentum advances momentum by dt and, if it produced a new
// position, writes it onto ctl. Returns whether momentum is still
// running after the tick.
func (in *Input) TickMomentum(ctl *scrollctl.Controller, now time.Time, dt time.Duration) bool {
	if !in.Momentum.Running() {
		return false
	}
	next := in.Momentum.Tick(in.Compress, ctl.Position(), float32(dt.Seconds()))
	ctl.SetPosition(next, now)
	return in.Momentum.Running()
}

// feature/scrollbar lives here rather than under feature/ because it has
// no renderer-agnostic half: a scrollbar is pure presentation over the
// scroll controller's position, so it is wired directly against Gio's
// own component.Scrollbar, the same widget example/kitchen composes
// (alongside component.ModalState) for its chat transcript.
package gio

import (
	"time"

	"gioui.org/layout"
	"gioui.org/widget/material"
	"gioui.org/x/component"

	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/scrollctl"
)

// Scrollbar adapts scrollctl.Controller to component.Scrollbar: thumb
// length is containerSize/actualSize, thumb position is linear in the
// controller's logical scroll position, dragging the thumb calls back
// into SetPosition, and the bar auto-hides once the controller has been
// idle past its IdleTimeout.
type Scrollbar struct {
	Scroll *scrollctl.Controller
	Axis   layout.Axis

	state component.ScrollbarState
}

// NewScrollbar constructs a Scrollbar bound to ctl.
func NewScrollbar(ctl *scrollctl.Controller, axis layout.Axis) *Scrollbar {
	return &Scrollbar{Scroll: ctl, Axis: axis}
}

// Layout draws the scrollbar track/thumb, applies any drag the user
// performed this frame back onto the scroll controller, and returns the
// scrollbar's dimensions. Whether the bar should currently be painted is
// reported separately by Visible (auto-hide follows the controller's
// IsScrolling/idle state, not hover).
func (s *Scrollbar) Layout(gtx C, th *material.Theme, actualSize, containerSize float32, now time.Time) D {
	if actualSize <= 0 {
		return D{}
	}
	pos := s.Scroll.Position()
	viewportStart := pos / actualSize
	viewportEnd := (pos + containerSize) / actualSize
	if viewportEnd > 1 {
		viewportEnd = 1
	}

	sb := component.Scrollbar(th, &s.state)
	dims := sb.Layout(gtx, s.Axis, viewportStart, viewportEnd)

	if delta := s.state.ScrollDistance(); delta != 0 {
		maxPos := actualSize - containerSize
		if maxPos < 0 {
			maxPos = 0
		}
		next := pos + delta*actualSize
		if next < 0 {
			next = 0
		}
		if next > maxPos {
			next = maxPos
		}
		s.Scroll.SetPosition(next, now)
	}

	return dims
}

// Visible reports whether the scrollbar should currently be painted:
// while actively scrolling/dragging, or always when the caller never
// wants auto-hide (IdleTimeout <= 0).
func (s *Scrollbar) Visible(now time.Time) bool {
	if s.Scroll.IdleTimeout <= 0 {
		return true
	}
	return s.Scroll.IsScrolling(now) || s.state.Dragging()
}

// Name identifies this feature for build-time diagnostics.
func (s *Scrollbar) Name() string { return "scrollbar" }

// Priority runs after the scroll controller is wired but otherwise has
// no ordering dependency, so it uses the default.
func (s *Scrollbar) Priority() int { return feature.DefaultPriority }

// Setup adopts ctx's scroll controller if one wasn't supplied to
// NewScrollbar directly, and registers a destroy hook resetting the
// drag state.
func (s *Scrollbar) Setup(ctx *feature.Context) error {
	if s.Scroll == nil {
		s.Scroll = ctx.Scroll
	}
	ctx.Points.DestroyHandlers = append(ctx.Points.DestroyHandlers, func() {
		s.state = component.ScrollbarState{}
	})
	return nil
}

// Destroy is a no-op beyond the DestroyHandlers registration above;
// present to satisfy feature.Feature.
func (s *Scrollbar) Destroy() {}

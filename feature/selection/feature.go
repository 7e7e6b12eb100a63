package selection

import "github.com/vlist-engine/vlist/feature"

// Name identifies this feature for build-time diagnostics.
func (s *Selection) Name() string { return "selection" }

// Priority runs selection at the default priority: it doesn't depend on
// any other feature's Methods/Cache rewiring.
func (s *Selection) Priority() int { return feature.DefaultPriority }

// Setup registers a destroy hook clearing the selection's event bus; the
// selection/focus state itself needs no wiring into Methods or the size
// cache, since it's consulted per-row by the renderer rather than by
// replacing a core method.
func (s *Selection) Setup(ctx *feature.Context) error {
	ctx.Points.DestroyHandlers = append(ctx.Points.DestroyHandlers, s.Bus.Clear)
	return nil
}

// Destroy is a no-op beyond the DestroyHandlers registration above;
// present to satisfy feature.Feature.
func (s *Selection) Destroy() {}

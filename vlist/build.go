package vlist

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/vlist-engine/vlist/compress"
	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/eventbus"
	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/scrollctl"
	"github.com/vlist-engine/vlist/sizecache"
	"github.com/vlist-engine/vlist/viewport"
)

// Build validates cfg and constructs a List, wiring every core subsystem
// together and running each registered feature's Setup in ascending
// priority order. It never panics past validation: its own checks return
// a *ConfigError or *ContainerNotFoundError, and an error returned by a
// feature's Setup (such as *feature.MethodCollisionError for a method
// claimed twice, or grid's *grid.ConfigError) is returned unchanged,
// not wrapped in *ConfigError. This mirrors the teacher's
// eager-validation style while returning rather than panicking
// (spec.md §7's build-time error policy).
func Build(cfg Config) (*List, error) {
	if cfg.Container == nil {
		return nil, &ConfigError{Reason: "container is required"}
	}
	if cfg.Container.Renderer() == "" {
		return nil, &ContainerNotFoundError{Reason: "container did not resolve to a renderer"}
	}
	if cfg.Item.Size == nil {
		return nil, &ConfigError{Reason: "item.size is required"}
	}
	if cfg.Item.Template == nil {
		return nil, &ConfigError{Reason: "item.template is required"}
	}
	if cfg.Horizontal && cfg.Reverse {
		return nil, &ConfigError{Reason: "horizontal orientation is incompatible with reverse mode"}
	}

	logger := cfg.Logger
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}

	manager, total := buildDataManager(cfg, logger)

	cache, err := sizecache.NewVariable(func(i int) float32 { return cfg.Item.Size(i) }, total)
	if err != nil {
		return nil, &ConfigError{Reason: "item.size: " + err.Error()}
	}

	overscan := cfg.Overscan
	if overscan < 0 {
		overscan = viewport.DefaultOverscan
	}
	vp := viewport.NewEngine(cache, overscan)

	idle := cfg.Scroll.IdleTimeout
	if idle <= 0 {
		idle = scrollctl.DefaultIdleTimeout
	}
	ctl := scrollctl.NewController(cache, 0, idle)
	ctl.Wrap = cfg.Scroll.Wrap

	ce := compress.NewEngine(cache.TotalSize(), 0, cfg.compressionCeiling())

	l := &List{
		cfg:      cfg,
		state:    stateConstructing,
		cache:    cache,
		viewport: vp,
		scroll:   ctl,
		compress: ce,
		data:     manager,
		logger:   logger,
		template: cfg.Item.Template,

		scrollBus:    &eventbus.Bus[ScrollEvent]{Name: "scroll", Logger: logger},
		rangeBus:     &eventbus.Bus[RangeChangeEvent]{Name: "range:change", Logger: logger},
		clickBus:     &eventbus.Bus[ItemClickEvent]{Name: "item:click", Logger: logger},
		dblClickBus:  &eventbus.Bus[ItemClickEvent]{Name: "item:dblclick", Logger: logger},
		resizeBus:    &eventbus.Bus[ResizeEvent]{Name: "resize", Logger: logger},
		velocityBus:  &eventbus.Bus[VelocityChangeEvent]{Name: "velocity:change", Logger: logger},
	}

	methods := &feature.Methods{
		Items: func() []data.Item {
			n := l.data.Total()
			items := make([]data.Item, n)
			for i := 0; i < n; i++ {
				items[i] = l.data.Item(i)
			}
			return items
		},
		Total: func() int { return l.data.Total() },
	}
	points := &feature.RegistrationPoints{}

	if err := l.registerFeatures(methods, points); err != nil {
		return nil, err
	}
	l.methods = methods
	l.points = points

	l.state = stateInitialized
	l.forceRender()
	if cfg.Reverse && total > 0 {
		l.ScrollToIndex(total-1, scrollctl.AlignEnd, 0)
	}
	return l, nil
}

func buildDataManager(cfg Config, logger *zerolog.Logger) (data.Manager, int) {
	if cfg.Adapter != nil {
		async := data.NewAsync(cfg.Adapter)
		async.Logger = logger
		return async, async.Total()
	}
	m := data.NewInMemory(cfg.Items)
	return m, m.Total()
}

// registerFeatures sorts l.cfg.Features by ascending priority and calls
// each Setup in order, rejecting any second feature that tries to
// override an already-owned Methods field.
func (l *List) registerFeatures(methods *feature.Methods, points *feature.RegistrationPoints) error {
	features := append([]feature.Feature(nil), l.cfg.Features...)
	sort.SliceStable(features, func(i, j int) bool {
		return priorityOf(features[i]) < priorityOf(features[j])
	})

	ctx := &feature.Context{
		Cache:       l.cache,
		Viewport:    l.viewport,
		Scroll:      l.scroll,
		Data:        l.data,
		Horizontal:  l.cfg.Horizontal,
		Reverse:     l.cfg.Reverse,
		ClassPrefix: l.cfg.classPrefix(),
		Methods:     methods,
		Points:      points,
		Template:    l.template,
	}
	ctx.Mutate = feature.Mutators{
		SetData: func(m data.Manager) {
			l.data = m
			ctx.Data = m
		},
		SetScroll:   func(c *scrollctl.Controller) { l.scroll = c },
		SetTemplate: func(t any) { ctx.Template = t },
	}

	for _, f := range features {
		if err := f.Setup(ctx); err != nil {
			return err
		}
	}
	l.features = features
	l.template = ctx.Template
	return nil
}

func priorityOf(f feature.Feature) int {
	p := f.Priority()
	if p <= 0 {
		return feature.DefaultPriority
	}
	return p
}

package vlist

import (
	"errors"
	"testing"

	"github.com/vlist-engine/vlist/data"
	"github.com/vlist-engine/vlist/feature"
	"github.com/vlist-engine/vlist/scrollctl"
)

type fakeSurface struct{ name string }

func (f fakeSurface) Renderer() string { return f.name }

func items(n int) []data.Item {
	out := make([]data.Item, n)
	for i := range out {
		out[i] = data.Item{ID: data.NewSerial(), Payload: i}
	}
	return out
}

func validConfig() Config {
	return Config{
		Container: fakeSurface{name: "gio"},
		Item:      ItemConfig{Size: ConstSize(24), Template: struct{}{}},
		Items:     items(100),
	}
}

func TestBuildRejectsNilContainer(t *testing.T) {
	cfg := validConfig()
	cfg.Container = nil
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected error for nil container")
	} else if _, ok := err.(*ConfigError); !ok {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
}

func TestBuildRejectsUnresolvedContainer(t *testing.T) {
	cfg := validConfig()
	cfg.Container = fakeSurface{name: ""}
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected error for unresolved container")
	} else if _, ok := err.(*ContainerNotFoundError); !ok {
		t.Fatalf("expected *ContainerNotFoundError, got %T", err)
	}
}

func TestBuildRejectsMissingSize(t *testing.T) {
	cfg := validConfig()
	cfg.Item.Size = nil
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected error for missing size")
	}
}

func TestBuildRejectsMissingTemplate(t *testing.T) {
	cfg := validConfig()
	cfg.Item.Template = nil
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected error for missing template")
	}
}

func TestBuildRejectsHorizontalReverseCombo(t *testing.T) {
	cfg := validConfig()
	cfg.Horizontal = true
	cfg.Reverse = true
	if _, err := Build(cfg); err == nil {
		t.Fatal("expected error for horizontal+reverse")
	}
}

func TestBuildSucceedsWithInMemoryItems(t *testing.T) {
	l, err := Build(validConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if l.Total() != 100 {
		t.Fatalf("Total() = %d, want 100", l.Total())
	}
	if got := len(l.Items()); got != 100 {
		t.Fatalf("len(Items()) = %d, want 100", got)
	}
}

func TestBuildWithReverseScrollsToEnd(t *testing.T) {
	cfg := validConfig()
	cfg.Reverse = true
	l, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := l.scroll.TargetForIndex(99, scrollctl.AlignEnd)
	if got := l.GetScrollPosition(); got != want {
		t.Fatalf("GetScrollPosition() = %v, want %v", got, want)
	}
}

type claimingFeature struct {
	name  string
	total func() int
}

func (c claimingFeature) Name() string  { return c.name }
func (c claimingFeature) Priority() int { return feature.DefaultPriority }
func (c claimingFeature) Setup(ctx *feature.Context) error {
	return ctx.Methods.ClaimTotal(c.name, c.total)
}
func (c claimingFeature) Destroy() {}

func TestBuildRejectsCollidingFeatureMethodClaims(t *testing.T) {
	cfg := validConfig()
	cfg.Features = []feature.Feature{
		claimingFeature{name: "a", total: func() int { return 1 }},
		claimingFeature{name: "b", total: func() int { return 2 }},
	}
	_, err := Build(cfg)
	if err == nil {
		t.Fatal("expected a method collision error")
	}
	var collision *feature.MethodCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("expected *feature.MethodCollisionError, got %T", err)
	}
	if collision.Feature != "b" {
		t.Fatalf("collision.Feature = %q, want %q", collision.Feature, "b")
	}
}

func TestBuildAppliesFeatureOverride(t *testing.T) {
	cfg := validConfig()
	cfg.Features = []feature.Feature{
		claimingFeature{name: "constant-total", total: func() int { return 7 }},
	}
	l, err := Build(cfg)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if got := l.Total(); got != 7 {
		t.Fatalf("Total() = %d, want 7 (feature override)", got)
	}
}

func TestBuildDefaultsLoggerToNop(t *testing.T) {
	l, err := Build(validConfig())
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if l.logger == nil {
		t.Fatal("expected a non-nil default logger")
	}
}

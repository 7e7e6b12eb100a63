package vlist

import "fmt"

// ConfigError is returned from Build for a fatal build-time
// misconfiguration Build checks itself: missing container, missing
// size, missing template, horizontal orientation combined with reverse
// mode, or a size function failing validation. Errors from a feature's
// Setup (an incompatible feature combination, a method-name collision
// between two features) are returned as the feature's own error types.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("vlist: invalid config: %s", e.Reason)
}

// ContainerNotFoundError is returned from Build when the configured
// container surface could not be resolved (the Go analogue of a CSS
// selector that matched nothing).
type ContainerNotFoundError struct {
	Reason string
}

func (e *ContainerNotFoundError) Error() string {
	return fmt.Sprintf("vlist: container not found: %s", e.Reason)
}

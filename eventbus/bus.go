// Package eventbus implements a small typed publish/subscribe primitive.
//
// Rather than a single bus keyed by string event names dispatching to
// handlers typed as func(any), each event kind gets its own Bus[E]
// instantiation. This keeps handler registration statically typed and
// avoids a reflection-based dispatch table.
package eventbus

import (
	"fmt"
	"runtime/debug"
	"sync"

	"github.com/rs/zerolog"
)

// Handler receives a published payload.
type Handler[E any] func(E)

// Unsubscribe removes the handler it was returned for.
type Unsubscribe func()

// HandlerError wraps a panic recovered from within a handler invocation.
// The bus itself never returns this error to Emit's caller; it is only
// constructed for logging.
type HandlerError struct {
	Event string
	Panic any
	Stack []byte
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("eventbus: handler for %q panicked: %v", e.Event, e.Panic)
}

type subscription[E any] struct {
	id      uint64
	handler Handler[E]
}

// Bus is a typed publish/subscribe channel for a single event kind. The
// zero value is usable; Name is only used for logging.
type Bus[E any] struct {
	// Name identifies this bus for log messages (e.g. "scroll",
	// "range:change"). Optional.
	Name string
	// Logger receives a structured log line whenever a handler panics.
	// A nil Logger silently discards these (zerolog.Nop()).
	Logger *zerolog.Logger

	mu     sync.Mutex
	nextID uint64
	subs   []subscription[E]
}

// On registers handler for every future Emit and returns a function that
// removes it. Handlers run in registration order.
func (b *Bus[E]) On(handler Handler[E]) Unsubscribe {
	if handler == nil {
		return func() {}
	}
	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs = append(b.subs, subscription[E]{id: id, handler: handler})
	b.mu.Unlock()
	return func() { b.off(id) }
}

// Off does not remove any handler: Go funcs are not comparable, so
// handler cannot be matched against the registered subscriptions, and
// Off is a no-op for registered and unregistered handlers alike. A
// handler is removed only by calling the Unsubscribe returned by On.
func (b *Bus[E]) Off(handler Handler[E]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// Handlers are not comparable in Go, so matching by value is not
	// possible without reflect.ValueOf(...).Pointer() comparisons, which
	// are unreliable for closures. Offer no-op semantics here; callers
	// needing reliable removal should use the Unsubscribe from On.
	_ = handler
}

func (b *Bus[E]) off(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, sub := range b.subs {
		if sub.id == id {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Clear removes every subscription.
func (b *Bus[E]) Clear() {
	b.mu.Lock()
	b.subs = nil
	b.mu.Unlock()
}

// Emit invokes every registered handler, in registration order, with
// payload. A handler panic is recovered, logged, and does not prevent the
// remaining handlers from running or corrupt the bus's subscription list.
func (b *Bus[E]) Emit(payload E) {
	b.mu.Lock()
	// Snapshot so that a handler calling On/Off/Clear during Emit (a
	// legitimate reentrant pattern: a range:change handler calling
	// setItems, say) doesn't mutate the slice we're iterating.
	handlers := make([]Handler[E], len(b.subs))
	for i, sub := range b.subs {
		handlers[i] = sub.handler
	}
	b.mu.Unlock()

	for _, h := range handlers {
		b.invoke(h, payload)
	}
}

func (b *Bus[E]) invoke(h Handler[E], payload E) {
	defer func() {
		if r := recover(); r != nil {
			herr := &HandlerError{Event: b.Name, Panic: r, Stack: debug.Stack()}
			logger := b.Logger
			if logger == nil {
				nop := zerolog.Nop()
				logger = &nop
			}
			logger.Error().
				Str("event", b.Name).
				Interface("panic", r).
				Bytes("stack", herr.Stack).
				Msg("eventbus: recovered handler panic")
		}
	}()
	h(payload)
}

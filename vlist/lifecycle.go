package vlist

// lifecycleState is the three-state machine every exported List method
// consults before doing anything: constructing -> initialized ->
// destroyed, one-way only. This generalizes the teacher's ad hoc "guard
// every method against a nil/not-ready receiver" style into one explicit
// state checked centrally instead of scattered per method.
type lifecycleState int

const (
	stateConstructing lifecycleState = iota
	stateInitialized
	stateDestroyed
)

func (s lifecycleState) String() string {
	switch s {
	case stateConstructing:
		return "constructing"
	case stateInitialized:
		return "initialized"
	case stateDestroyed:
		return "destroyed"
	default:
		return "unknown"
	}
}

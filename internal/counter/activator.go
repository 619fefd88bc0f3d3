package counter

// DefaultThreshold is the share of a counter element that must be on screen
// before it starts.
const DefaultThreshold = 0.6

// Activator turns visibility reports into one-shot activations.
type Activator struct {
	threshold float64
	started   map[string]struct{}
}

// NewActivator returns an Activator that fires at the given visible ratio.
// A threshold outside (0, 1] falls back to DefaultThreshold.
func NewActivator(threshold float64) *Activator {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultThreshold
	}
	return &Activator{
		threshold: threshold,
		started:   make(map[string]struct{}),
	}
}

// Observe reports whether the element id should start now. It returns true at
// most once per id, the first time ratio reaches the threshold.
func (a *Activator) Observe(id string, ratio float64) bool {
	if _, ok := a.started[id]; ok {
		return false
	}
	if ratio < a.threshold {
		return false
	}
	a.started[id] = struct{}{}
	return true
}

// Started reports whether id has already been activated.
func (a *Activator) Started(id string) bool {
	_, ok := a.started[id]
	return ok
}

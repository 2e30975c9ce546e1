package obs

// Label is a key/value pair attached to measurements.
type Label struct {
	Key   string
	Value string
}

// Meter is a very small interface for emitting counters.
// Implementations may no-op or bridge to a metrics system.
type Meter interface {
	Counter(name string, delta float64, labels ...Label)
}

// NopMeter is a Meter that discards all measurements.
type NopMeter struct{}

func (NopMeter) Counter(string, float64, ...Label) {}

// atom.go — the indivisible stimulation waveform segment.
//
// Atoms are immutable value types: constructed through validating
// factories, copied by value, never mutated in place.

package stim

import "fmt"

// AtomKind is the closed set of atom variants.
type AtomKind uint8

const (
	// NoKind marks the zero Atom. Atoms of this kind cannot be appended
	// to a function.
	NoKind AtomKind = iota

	// Pause is a no-current segment: amplitude fixed at zero.
	Pause

	// Rect is a constant-amplitude rectangular segment.
	Rect
)

// String returns the kind name for diagnostics.
func (k AtomKind) String() string {
	switch k {
	case Pause:
		return "Pause"
	case Rect:
		return "Rect"
	default:
		return "NoKind"
	}
}

// Atom is one indivisible segment of a stimulation waveform: a signed
// amplitude in microamps held for an unsigned duration in microseconds.
//
// The zero Atom has NoKind and is invalid; obtain atoms only through
// NewRectAtom and NewPauseAtom.
type Atom struct {
	kind      AtomKind
	amplitude int32  // µA; 0 for Pause
	duration  uint64 // µs
}

// NewRectAtom constructs a rectangular segment.
//
// The amplitude envelope spans every position of a charge-balanced pulse:
// main pulses are negative down to MinAmplitude, counter pulses are
// positive up to MaxCounterAmplitude, dead zones are zero. The duration
// must lie in [MinRectDuration, MaxPauseDuration] in steps of
// RectDurationStep µs (counter durations reach 4× the main maximum, and
// the post-pulse pause reaches the pause-grid maximum).
//
// Position-specific constraints — the main-pulse range, the counter-pulse
// relations, the dead-zone grids — are enforced by Function.Append.
// Returns ErrOutOfRange without side effects on violation.
func NewRectAtom(amplitude int32, duration uint64) (Atom, error) {
	if amplitude < MinAmplitude || amplitude > MaxCounterAmplitude {
		return Atom{}, fmt.Errorf("rect amplitude %d µA outside [%d, %d]: %w",
			amplitude, MinAmplitude, MaxCounterAmplitude, ErrOutOfRange)
	}
	if !onRectDurationGrid(duration) {
		return Atom{}, fmt.Errorf("rect duration %d µs not in [%d, %d] step %d: %w",
			duration, MinRectDuration, MaxPauseDuration, RectDurationStep, ErrOutOfRange)
	}

	return Atom{kind: Rect, amplitude: amplitude, duration: duration}, nil
}

// NewPauseAtom constructs a pause segment with amplitude fixed at zero.
//
// The legal duration set is discontinuous: {10, 80, 160, ..., 20400} µs —
// the minimum representable value is 10, after which the grid continues in
// multiples of 80. Returns ErrOutOfRange without side effects on violation.
func NewPauseAtom(duration uint64) (Atom, error) {
	if !onPauseDurationGrid(duration) {
		return Atom{}, fmt.Errorf("pause duration %d µs not in {%d, %d, %d, ..., %d}: %w",
			duration, MinPauseDuration, PauseDurationStep, 2*PauseDurationStep, MaxPauseDuration, ErrOutOfRange)
	}

	return Atom{kind: Pause, duration: duration}, nil
}

// Kind returns the atom variant.
func (a Atom) Kind() AtomKind { return a.kind }

// Amplitude returns the signal amplitude in microamps (0 for Pause atoms).
func (a Atom) Amplitude() int32 { return a.amplitude }

// Duration returns the segment duration in microseconds.
func (a Atom) Duration() uint64 { return a.duration }

// Equal reports whether both atoms define the same stimulation signal:
// identical kind, amplitude and duration.
func (a Atom) Equal(other Atom) bool {
	return a.kind == other.kind &&
		a.amplitude == other.amplitude &&
		a.duration == other.duration
}

// Clone returns an independent copy of the atom. Atoms are value types, so
// this is a plain value copy; it exists to mirror the deep-copy contract of
// Function.Clone and Command.Clone.
func (a Atom) Clone() Atom { return a }

// String renders the atom for diagnostics, e.g. "Rect(-3060µA, 200µs)".
func (a Atom) String() string {
	if a.kind == Pause {
		return fmt.Sprintf("Pause(%dµs)", a.duration)
	}

	return fmt.Sprintf("%s(%dµA, %dµs)", a.kind, a.amplitude, a.duration)
}

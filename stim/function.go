// function.go — a repeatable, homogeneous atom sequence bound to virtual
// stimulation electrodes.
//
// Ownership: a Function is mutable while free-standing; once appended to a
// Command the command owns it exclusively and every external mutator fails
// with ErrOwned. Clone is the only way back to a mutable copy.

package stim

import (
	"fmt"
	"sort"
)

// Function is an ordered sequence of same-kind Atoms, a repetition count,
// virtual source/destination electrode sets and a name.
//
// Two shapes are valid: a stimulation pause (exactly one Pause atom) and a
// charge-balanced pulse (up to five Rect atoms validated incrementally
// against the pulse form, complete at five).
//
// The zero value is not usable; create functions with NewFunction.
type Function struct {
	atoms       []Atom
	repetitions uint32
	source      []uint32 // sorted, deduplicated
	destination []uint32 // sorted, deduplicated
	useGround   bool
	name        string
	owned       bool // set once appended to a Command
}

// NewFunction returns an empty function with repetition count 1, no atoms,
// no electrodes and an empty name.
func NewFunction() *Function {
	return &Function{repetitions: 1}
}

// Append adds atom to the end of the function and transfers it into the
// function's signal form.
//
// Rejections (no state change on failure):
//   - NoKind atoms and kind mismatches → ErrInvalidComposition
//   - a second atom in a pause function → ErrInvalidComposition
//   - a violated pulse-position relation or a sixth pulse atom →
//     ErrInvalidComposition
//   - the function is already owned by a command → ErrOwned
func (f *Function) Append(atom Atom) error {
	if f.owned {
		return fmt.Errorf("append atom to attached function %q: %w", f.name, ErrOwned)
	}
	if atom.kind == NoKind {
		return fmt.Errorf("append typeless atom: %w", ErrInvalidComposition)
	}
	if len(f.atoms) > 0 && atom.kind != f.atoms[0].kind {
		return fmt.Errorf("append %s atom to %s function: %w",
			atom.kind, f.atoms[0].kind, ErrInvalidComposition)
	}

	switch atom.kind {
	case Pause:
		// A stimulation pause is exactly one pause atom.
		if len(f.atoms) > 0 {
			return fmt.Errorf("pause function already holds its atom: %w", ErrInvalidComposition)
		}
	case Rect:
		if err := validatePulseAtom(f.atoms, atom); err != nil {
			return err
		}
	}

	f.atoms = append(f.atoms, atom)

	return nil
}

// Kind returns the shared kind of the function's atoms, or NoKind while
// the function is empty.
func (f *Function) Kind() AtomKind {
	if len(f.atoms) == 0 {
		return NoKind
	}

	return f.atoms[0].kind
}

// Size returns the number of atoms, repetition-unaware.
func (f *Function) Size() int { return len(f.atoms) }

// Atoms returns an independent copy of the atom sequence.
func (f *Function) Atoms() []Atom {
	out := make([]Atom, len(f.atoms))
	copy(out, f.atoms)

	return out
}

// AtomIterator returns a lazy forward iterator over the atom sequence,
// repetition-unaware. The iterator snapshots the sequence at creation.
func (f *Function) AtomIterator() Iterator[Atom] {
	return &atomIterator{atoms: f.atoms[:len(f.atoms):len(f.atoms)]}
}

// SetRepetitions sets how many times the atom sequence is repeated.
// Zero is rejected with ErrInvalidArgument; the prior value is retained.
func (f *Function) SetRepetitions(repetitions uint32) error {
	if f.owned {
		return fmt.Errorf("set repetitions on attached function %q: %w", f.name, ErrOwned)
	}
	if repetitions == 0 {
		return fmt.Errorf("function repetitions must be ≥ 1: %w", ErrInvalidArgument)
	}
	f.repetitions = repetitions

	return nil
}

// Repetitions returns the repetition count (≥ 1).
func (f *Function) Repetitions() uint32 { return f.repetitions }

// SetName sets the function name (copied in).
func (f *Function) SetName(name string) error {
	if f.owned {
		return fmt.Errorf("set name on attached function %q: %w", f.name, ErrOwned)
	}
	f.name = name

	return nil
}

// Name returns the function name; empty if never set.
func (f *Function) Name() string { return f.name }

// SetVirtualStimulationElectrodes assigns the virtual electrode sets the
// function stimulates between. Indices are deduplicated and stored sorted;
// the sets are replaced wholesale, never merged.
//
// Rejections (no partial assignment on failure):
//   - source empty → ErrInvalidArgument
//   - destination empty while useGround is false → ErrInvalidArgument
//   - source and destination not disjoint → ErrInvalidArgument
func (f *Function) SetVirtualStimulationElectrodes(source, destination []uint32, useGround bool) error {
	if f.owned {
		return fmt.Errorf("set electrodes on attached function %q: %w", f.name, ErrOwned)
	}
	src := normalizeElectrodes(source)
	dst := normalizeElectrodes(destination)
	if len(src) == 0 {
		return fmt.Errorf("source virtual electrode is empty: %w", ErrInvalidArgument)
	}
	if len(dst) == 0 && !useGround {
		return fmt.Errorf("destination virtual electrode is empty and ground return disabled: %w",
			ErrInvalidArgument)
	}
	if overlap := intersect(src, dst); overlap >= 0 {
		return fmt.Errorf("electrode %d is both source and destination: %w", overlap, ErrInvalidArgument)
	}

	f.source, f.destination, f.useGround = src, dst, useGround

	return nil
}

// SourceElectrodes returns a sorted copy of the source electrode indices.
func (f *Function) SourceElectrodes() []uint32 { return copyElectrodes(f.source) }

// DestinationElectrodes returns a sorted copy of the destination
// electrode indices.
func (f *Function) DestinationElectrodes() []uint32 { return copyElectrodes(f.destination) }

// UsesGroundElectrode reports whether stimulation to ground is enabled.
func (f *Function) UsesGroundElectrode() bool { return f.useGround }

// Owned reports whether the function has been consumed by a command.
// Owned functions are read-only; Clone is the way back to a mutable copy.
func (f *Function) Owned() bool { return f.owned }

// Period returns the duration in µs of one pass through the atom sequence.
func (f *Function) Period() uint64 {
	var period uint64
	for _, a := range f.atoms {
		period += a.duration
	}

	return period
}

// Duration returns the total duration in µs including all repetitions:
// Period() × Repetitions().
func (f *Function) Duration() uint64 {
	return f.Period() * uint64(f.repetitions)
}

// HasEqualSignalForm reports whether both functions define the same signal
// over one period: equal atom count and pairwise equal atoms. Repetition
// counts, electrodes and names are ignored.
func (f *Function) HasEqualSignalForm(other *Function) bool {
	if other == nil || len(f.atoms) != len(other.atoms) {
		return false
	}
	for i, a := range f.atoms {
		if !a.Equal(other.atoms[i]) {
			return false
		}
	}

	return true
}

// HasEqualVirtualStimulationElectrodes reports whether both functions
// target exactly the same source set, destination set and ground flag.
func (f *Function) HasEqualVirtualStimulationElectrodes(other *Function) bool {
	if other == nil || f.useGround != other.useGround {
		return false
	}

	return equalElectrodes(f.source, other.source) &&
		equalElectrodes(f.destination, other.destination)
}

// Clone returns a deep, free-standing copy: its own atom storage, its own
// electrode sets, not owned by any command. Mutating the clone never
// affects the original and vice versa.
func (f *Function) Clone() *Function {
	return &Function{
		atoms:       append([]Atom(nil), f.atoms...),
		repetitions: f.repetitions,
		source:      copyElectrodes(f.source),
		destination: copyElectrodes(f.destination),
		useGround:   f.useGround,
		name:        f.name,
	}
}

// normalizeElectrodes returns a sorted, deduplicated copy of indices.
func normalizeElectrodes(indices []uint32) []uint32 {
	if len(indices) == 0 {
		return nil
	}
	out := append([]uint32(nil), indices...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	dedup := out[:1]
	for _, idx := range out[1:] {
		if idx != dedup[len(dedup)-1] {
			dedup = append(dedup, idx)
		}
	}

	return dedup
}

// intersect returns one electrode present in both sorted sets, or -1 if
// the sets are disjoint.
func intersect(a, b []uint32) int64 {
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			return int64(a[i])
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}

	return -1
}

// copyElectrodes duplicates a (possibly nil) electrode slice.
func copyElectrodes(src []uint32) []uint32 {
	if src == nil {
		return nil
	}

	return append([]uint32(nil), src...)
}

// equalElectrodes compares two sorted electrode sets element-wise.
func equalElectrodes(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

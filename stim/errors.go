// errors.go — sentinel errors for the stim package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • Implementations attach context using `%w` at the call site.
//   • No operation panics on user input; every failure is synchronous,
//     local and leaves the receiver unchanged (no partial append, no
//     partial ownership transfer).
//   • No silent clamping anywhere: an illegal stimulation parameter is
//     rejected, never rounded.

package stim

import "errors"

// ErrOutOfRange indicates an amplitude or duration outside the legal
// stepped set for the atom kind.
// Typical origins: NewRectAtom, NewPauseAtom.
// Usage: if errors.Is(err, stim.ErrOutOfRange) { /* correct the value */ }.
var ErrOutOfRange = errors.New("stim: value outside the legal stepped range")

// ErrInvalidComposition indicates an atom that cannot extend its function:
// kind mismatch, a violated pulse-form relation, a second atom in a pause
// function, or a sixth atom in a complete pulse.
// Usage: if errors.Is(err, stim.ErrInvalidComposition) { /* rebuild pulse */ }.
var ErrInvalidComposition = errors.New("stim: atom composition violates the pulse form")

// ErrInvalidArgument indicates a structurally invalid argument: zero
// repetitions, overlapping or empty virtual electrode sets, or appending a
// nil / zero-duration function to a command.
var ErrInvalidArgument = errors.New("stim: invalid argument")

// ErrOutOfBounds indicates an iterator was stepped past its last element.
// Iterators are finite and non-restartable; obtain a fresh one to retraverse.
var ErrOutOfBounds = errors.New("stim: iterator stepped past the last element")

// ErrOwned indicates a mutation or transfer attempt on an object whose
// ownership has already moved: a function inside a command, a command
// handed to playback, or a second append of the same function.
var ErrOwned = errors.New("stim: ownership already transferred")

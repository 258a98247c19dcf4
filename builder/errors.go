// errors.go — sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Sentinels are NEVER wrapped with formatted strings at definition site.
//   • stim sentinels (ErrOutOfRange, ErrInvalidArgument, ...) pass through
//     builder calls wrapped with `%w`, so errors.Is works across layers.

package builder

import "errors"

// ErrAmplitudeOffGrid indicates a main-pulse amplitude that is inside the
// legal range but not on the device grid: [-3060, 0] µA in steps of 12,
// [-6120, -3060) µA in steps of 24.
// Usage: if errors.Is(err, builder.ErrAmplitudeOffGrid) { /* snap to grid */ }.
var ErrAmplitudeOffGrid = errors.New("builder: amplitude not on the 12/24 µA device grid")

// ErrEmptySequence indicates Sequence was called with no functions; a
// playable command holds at least one.
var ErrEmptySequence = errors.New("builder: command sequence is empty")

// ErrNilFunction indicates Sequence received a nil function. Detected
// during pre-validation, before any ownership transfer.
var ErrNilFunction = errors.New("builder: nil function in sequence")

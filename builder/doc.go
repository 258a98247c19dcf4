// Package builder provides strict, convenient factories on top of the raw
// stim model: whole charge-balanced pulses, pause functions, and command
// sequences, configured through functional options.
//
// The builder is the recommended composition path and carries the device
// amplitude grid that the raw model leaves to the caller:
//
//   - Pulse(amplitude, duration, opts...) rejects main amplitudes off the
//     12/24 µA grid (ErrAmplitudeOffGrid) and derives the counter pulse
//     exactly (-¼ amplitude, 4× duration), the two identical dead zones
//     and the post-pulse pause.
//   - PauseFunction(duration, opts...) builds the one-atom pause form.
//   - Sequence(functions, opts...) assembles a command, pre-validating
//     every function so that a failed build consumes nothing.
//
// Design contract (strict):
//   - Functional options resolve into an immutable config (no globals).
//   - Determinism: identical inputs and options produce identical
//     functions and commands.
//   - Safety: never panic; invalid options surface as sentinel errors on
//     the build call, and stim sentinels pass through wrapped with %w.
//
// Example:
//
//	pulse, err := builder.Pulse(-3060, 100,
//	    builder.WithRepetitions(10),
//	    builder.WithElectrodes([]uint32{16}, []uint32{17}),
//	    builder.WithName("conditioning"),
//	)
//	if err != nil { ... }
//
//	cmd, err := builder.Sequence([]*stim.Function{pulse},
//	    builder.WithTracingID(7),
//	    builder.WithCommandRepetitions(3),
//	)
//
// Errors:
//
//	ErrAmplitudeOffGrid - main amplitude not on the 12/24 µA device grid.
//	ErrEmptySequence    - Sequence called without functions.
//	ErrNilFunction      - Sequence received a nil function.
package builder

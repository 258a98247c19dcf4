// Package stimwave is an in-memory model for composing, validating and
// unrolling electrical stimulation commands for a neural implant.
//
// 🚀 What is stimwave?
//
//	A small, strict library that brings together:
//		• Atoms: indivisible waveform segments (amplitude + duration + kind)
//		• Functions: repeatable atom sequences bound to virtual electrodes
//		• Commands: repeatable function sequences with tracing metadata
//		• Iterators: three repetition-expansion strategies over one command
//		• Builders: charge-balanced pulse composition with strict grids
//		• Playback: a pure engine that unrolls commands deterministically
//
// ✨ Why choose stimwave?
//
//   - Safety-first – every illegal value is rejected, never rounded
//   - Exact arithmetic – durations and periods agree with the unrolling
//   - Pure Go – no cgo, no I/O, no background goroutines
//   - Explicit ownership – appends consume; transferred objects refuse
//     further mutation instead of aliasing silently
//
// Everything is organized under three subpackages:
//
//	stim/    — Atom, Function, Command, iterators, validation, errors
//	builder/ — strict pulse/pause/command factories with functional options
//	implant/ — playback boundary interfaces and an in-memory engine
//
// Quick ASCII sketch of the five-atom charge-balanced pulse:
//
//	                 ____
//	Pulse      _   _|    |_ _____
//	            | |
//	            |_|
//
//	Atom         1 2   3  4   5
//
// Atom 1 is the main pulse, atoms 2 and 4 are identical dead zones, atom 3
// is the counter pulse that cancels the main pulse's net charge, and atom 5
// is the post-pulse pause.
package stimwave

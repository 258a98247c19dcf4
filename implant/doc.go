// Package implant defines the playback boundary of the stimulation model:
// the interfaces an implant service exposes to accept a fully composed
// command, and a pure in-memory engine that exercises them.
//
// The hardware itself — transport, discovery, telemetry — lives behind
// these interfaces and is out of scope. What the package fixes is the
// handoff contract:
//
//   - StartStimulation takes single-shot ownership of the command (the
//     command is sealed; the caller must neither mutate nor hand it off
//     again).
//   - During playback the service reports a monotonically increasing
//     "functions finished" counter, one tick per completed function
//     occurrence in the fully repetition-expanded order.
//
// Playback is a deterministic, synchronous stand-in for the device: it
// unrolls the command with the fully repetition-aware iterator, drives a
// Listener, and accounts elapsed time in µs that agrees exactly with
// Command.Duration. Plan produces the same unrolling as an inspectable
// flat schedule with start offsets.
//
// Errors:
//
//	ErrNilCommand - StartStimulation/Plan received a nil command.
//	ErrBusy       - re-entrant StartStimulation while a command plays.
package implant

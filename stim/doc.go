// Package stim models electrical stimulation commands as a strict
// ownership tree: a Command owns an ordered sequence of Functions, and
// each Function owns an ordered sequence of Atoms.
//
// Data flows upward during construction (Atom → Function → Command) and is
// read back downward only through iteration and duration queries.
//
// # Atoms
//
// An Atom is the indivisible waveform segment: a signed amplitude in
// microamps, an unsigned duration in microseconds, and a kind. The zero
// Atom has NoKind and is rejected by every composition operation.
//
//	NewRectAtom(amplitude, duration)  — rectangular segment
//	NewPauseAtom(duration)            — pause (amplitude fixed at 0)
//
// Constructors validate against the legal stepped sets (see the range
// constants in validate.go) and fail with ErrOutOfRange; on failure nothing
// is constructed and no state changes.
//
// # Functions
//
// A Function is a homogeneous atom sequence plus a repetition count and
// virtual electrode targeting. Rectangular functions are validated
// incrementally against the five-atom charge-balanced pulse form:
//
//	1. main pulse        free amplitude/duration within the legal set
//	2. dead zone 0       amplitude 0
//	3. counter pulse     amplitude = -¼ · main, duration = 4 · main
//	4. dead zone         identical to atom 2
//	5. dead zone 1       amplitude 0, pause-grid duration
//
// A pause function holds exactly one pause atom. Composition violations
// fail with ErrInvalidComposition and leave the function unchanged.
//
// Period is the sum of atom durations; Duration is Period × repetitions.
//
// # Commands
//
// A Command is an ordered function sequence with its own repetition count,
// a 16-bit tracing id for log correlation, and a name. Append transfers
// ownership: a function inside a command refuses further external mutation
// with ErrOwned, and the same function cannot be appended twice. Seal marks
// the single-shot handoff to a playback sink.
//
// # Iterators
//
// Three lazy, forward-only, non-restartable iterators expand the same
// function sequence differently:
//
//	FunctionIterator()                 each function once, append order
//	CommandRepetitionAwareIterator()   whole sequence × command repetitions
//	RepetitionAwareIterator()          function repetitions × command repetitions
//
// Every iterator implements Iterator[*Function] with HasNext/Next; stepping
// past the end fails with ErrOutOfBounds. Iterators snapshot the sequence
// and repetition counts at creation and hold independent cursors.
//
// # Concurrency
//
// Single-writer construction: mutate a Function or Command only from the
// goroutine building it. After attachment the object is logically
// immutable, so any number of readers (iterators, duration queries) may run
// concurrently without locking. Clone is the only way to obtain a separate
// mutable copy.
//
// Errors:
//
//	ErrOutOfRange         - amplitude/duration outside the legal stepped set.
//	ErrInvalidComposition - atom cannot extend the function's pulse form.
//	ErrInvalidArgument    - zero repetitions, bad electrode sets, nil or
//	                        zero-duration function appended to a command.
//	ErrOutOfBounds        - iterator stepped past its last element.
//	ErrOwned              - mutation after ownership transfer.
package stim

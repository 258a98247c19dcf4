// command.go — an ordered, repeatable sequence of stimulation functions
// with tracing metadata.
//
// Ownership: Append consumes the function; Seal marks the single-shot
// handoff to a playback sink. Both are enforced with ErrOwned instead of
// relying on caller convention.

package stim

import "fmt"

// Command is the unit handed to an implant for playback: an ordered
// function sequence executed repetitions times, correlated with external
// logs through a 16-bit tracing id.
//
// Given functions A and B and command repetitions 3, playback order is
// A B | A B | A B; if A additionally has 2 function repetitions, the fully
// expanded order is A A B | A A B | A A B.
//
// The zero value is not usable; create commands with NewCommand.
type Command struct {
	functions   []*Function
	repetitions uint16
	tracingID   uint16
	name        string
	sealed      bool
}

// NewCommand returns an empty command with repetition count 1, tracing id
// 0 and an empty name.
func NewCommand() *Command {
	return &Command{repetitions: 1}
}

// Append adds function to the end of the execution sequence and takes
// exclusive ownership of it: after a successful append the function
// refuses external mutation, and it cannot be appended to any command
// again.
//
// Rejections (no ownership transfer on failure):
//   - nil function → ErrInvalidArgument
//   - zero-duration function (no atoms) → ErrInvalidArgument
//   - function already owned → ErrOwned
//   - command already sealed → ErrOwned
func (c *Command) Append(function *Function) error {
	if c.sealed {
		return fmt.Errorf("append to sealed command %q: %w", c.name, ErrOwned)
	}
	if function == nil {
		return fmt.Errorf("append nil function: %w", ErrInvalidArgument)
	}
	if function.owned {
		return fmt.Errorf("function %q already belongs to a command: %w", function.name, ErrOwned)
	}
	if function.Duration() == 0 {
		return fmt.Errorf("function %q has zero duration: %w", function.name, ErrInvalidArgument)
	}

	function.owned = true
	c.functions = append(c.functions, function)

	return nil
}

// Size returns the number of appended functions, unaware of any
// repetition count.
func (c *Command) Size() int { return len(c.functions) }

// Duration returns the total playback duration in µs, aware of both
// command and function repetitions:
//
//	Duration = Repetitions × Σ function.Duration()
func (c *Command) Duration() uint64 {
	var sum uint64
	for _, f := range c.functions {
		sum += f.Duration()
	}

	return sum * uint64(c.repetitions)
}

// SetRepetitions sets how many times the whole function sequence is
// executed. Zero is rejected with ErrInvalidArgument; the prior value is
// retained.
func (c *Command) SetRepetitions(repetitions uint16) error {
	if c.sealed {
		return fmt.Errorf("set repetitions on sealed command %q: %w", c.name, ErrOwned)
	}
	if repetitions == 0 {
		return fmt.Errorf("command repetitions must be ≥ 1: %w", ErrInvalidArgument)
	}
	c.repetitions = repetitions

	return nil
}

// Repetitions returns the command repetition count (≥ 1).
func (c *Command) Repetitions() uint16 { return c.repetitions }

// SetTracingID sets the opaque 16-bit id used to correlate executions of
// this command with external logs.
func (c *Command) SetTracingID(id uint16) error {
	if c.sealed {
		return fmt.Errorf("set tracing id on sealed command %q: %w", c.name, ErrOwned)
	}
	c.tracingID = id

	return nil
}

// TracingID returns the tracing id.
func (c *Command) TracingID() uint16 { return c.tracingID }

// SetName sets the command name (copied in).
func (c *Command) SetName(name string) error {
	if c.sealed {
		return fmt.Errorf("rename sealed command %q: %w", c.name, ErrOwned)
	}
	c.name = name

	return nil
}

// Name returns the command name; empty if never set.
func (c *Command) Name() string { return c.name }

// Seal marks the command as transferred to a playback sink. Sealing is
// single-shot: a second Seal, or any mutation afterwards, fails with
// ErrOwned. Read access (durations, iterators, Clone) stays available.
func (c *Command) Seal() error {
	if c.sealed {
		return fmt.Errorf("command %q already sealed: %w", c.name, ErrOwned)
	}
	c.sealed = true

	return nil
}

// Sealed reports whether ownership of the command has been handed off.
func (c *Command) Sealed() bool { return c.sealed }

// Clone returns a deep, independent copy: every function (and its atoms
// and electrode sets) is cloned, the clones are owned by the new command,
// and the new command is unsealed regardless of the receiver's state.
// No substructure is shared with the original.
func (c *Command) Clone() *Command {
	clone := &Command{
		functions:   make([]*Function, len(c.functions)),
		repetitions: c.repetitions,
		tracingID:   c.tracingID,
		name:        c.name,
	}
	for i, f := range c.functions {
		nf := f.Clone()
		nf.owned = true
		clone.functions[i] = nf
	}

	return clone
}

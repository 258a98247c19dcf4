// plan.go — flat execution schedule derived from a command.
//
// Plan and Playback unroll through the same iterator, so a plan's offsets
// are exactly the instants playback would reach; the duration identity
// (last offset + last period = Command.Duration) is a tested invariant.

package implant

import (
	"fmt"

	"github.com/pulselab/stimwave/stim"
)

// Step is one function occurrence in the fully repetition-expanded
// execution order.
type Step struct {
	// Index is the position in the unrolled sequence, starting at 0.
	Index int

	// Function is the occurrence being executed. Shared with the command;
	// read-only by the iteration contract.
	Function *stim.Function

	// Offset is the start instant in µs from command start.
	Offset uint64
}

// Plan unrolls cmd into its flat execution schedule: one Step per
// function occurrence, expanding function repetitions within each command
// pass. Plan is a read-only query — it does not seal the command — and a
// nil command fails with ErrNilCommand.
func Plan(cmd *stim.Command) ([]Step, error) {
	if cmd == nil {
		return nil, fmt.Errorf("Plan: %w", ErrNilCommand)
	}

	steps := make([]Step, 0, cmd.Size()*int(cmd.Repetitions()))
	var offset uint64
	it := cmd.RepetitionAwareIterator()
	for it.HasNext() {
		f, err := it.Next()
		if err != nil {
			return nil, fmt.Errorf("Plan: unroll %q: %w", cmd.Name(), err)
		}
		steps = append(steps, Step{Index: len(steps), Function: f, Offset: offset})
		offset += f.Period()
	}

	return steps, nil
}

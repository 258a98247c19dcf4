// implant.go — boundary interfaces and sentinel errors.

package implant

import (
	"errors"

	"github.com/pulselab/stimwave/stim"
)

// ErrNilCommand indicates a nil command at the playback boundary.
var ErrNilCommand = errors.New("implant: nil stimulation command")

// ErrBusy indicates StartStimulation was re-entered while a command is
// already playing.
var ErrBusy = errors.New("implant: stimulation already in progress")

// Stimulator accepts fully composed, validated commands for playback.
//
// StartStimulation takes single-shot ownership: on success the command is
// sealed and belongs to the service; the caller keeps read access only.
// StopStimulation aborts playback; stopping an idle service is a no-op.
type Stimulator interface {
	StartStimulation(cmd *stim.Command) error
	StopStimulation() error
}

// Listener receives playback notifications.
//
// OnStimulationStateChanged fires when playback starts (true) and ends
// (false). OnStimulationFunctionFinished fires once per completed
// function occurrence with the service's monotonically increasing
// execution counter.
type Listener interface {
	OnStimulationStateChanged(stimulating bool)
	OnStimulationFunctionFinished(executed uint64)
}

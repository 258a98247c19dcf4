// playback.go — a deterministic in-memory stand-in for the implant's
// stimulation engine.
//
// Playback runs synchronously: StartStimulation seals the command,
// unrolls it in hardware execution order and returns when the last
// function occurrence has "finished". No goroutines, no timing, no I/O —
// elapsed time is accounted arithmetically so tests can compare it
// against Command.Duration exactly.

package implant

import (
	"fmt"

	"github.com/pulselab/stimwave/stim"
)

// Playback is an in-memory Stimulator.
//
// The execution counter and the elapsed-time account are cumulative over
// the engine's lifetime, mirroring a device session that reports one
// monotone counter across commands. Playback is not safe for concurrent
// use; it models the single control connection to one implant.
type Playback struct {
	listener Listener
	playing  bool
	stopped  bool
	executed uint64 // function occurrences finished, cumulative
	elapsed  uint64 // µs of stimulation accounted, cumulative
}

// compile-time interface conformance
var _ Stimulator = (*Playback)(nil)

// NewPlayback returns an idle engine reporting to listener. A nil
// listener disables notifications; playback still runs and accounts.
func NewPlayback(listener Listener) *Playback {
	return &Playback{listener: listener}
}

// StartStimulation takes ownership of cmd and plays it to completion.
//
// The command is sealed first: a command already handed off (sealed)
// fails with stim.ErrOwned and is not played. Re-entrant starts from a
// listener callback fail with ErrBusy. A stop requested from a callback
// aborts playback after the current function occurrence.
func (p *Playback) StartStimulation(cmd *stim.Command) error {
	if cmd == nil {
		return fmt.Errorf("StartStimulation: %w", ErrNilCommand)
	}
	if p.playing {
		return fmt.Errorf("StartStimulation: %w", ErrBusy)
	}
	if err := cmd.Seal(); err != nil {
		return fmt.Errorf("StartStimulation: take ownership of %q: %w", cmd.Name(), err)
	}

	p.playing = true
	p.stopped = false
	p.notifyState(true)
	defer func() {
		p.playing = false
		p.notifyState(false)
	}()

	it := cmd.RepetitionAwareIterator()
	for it.HasNext() && !p.stopped {
		f, err := it.Next()
		if err != nil {
			return fmt.Errorf("StartStimulation: unroll %q: %w", cmd.Name(), err)
		}
		p.executed++
		p.elapsed += f.Period()
		if p.listener != nil {
			p.listener.OnStimulationFunctionFinished(p.executed)
		}
	}

	return nil
}

// StopStimulation aborts the running playback after the current function
// occurrence; stopping an idle engine is a no-op.
func (p *Playback) StopStimulation() error {
	p.stopped = true

	return nil
}

// Executed returns the cumulative count of finished function occurrences.
func (p *Playback) Executed() uint64 { return p.executed }

// Elapsed returns the cumulative stimulation time accounted, in µs.
func (p *Playback) Elapsed() uint64 { return p.elapsed }

// notifyState forwards a state transition to the listener, if any.
func (p *Playback) notifyState(stimulating bool) {
	if p.listener != nil {
		p.listener.OnStimulationStateChanged(stimulating)
	}
}

// builder.go — public entry-points: Pulse, PauseFunction, Sequence.
//
// Design contract (strict):
//   - Each entry-point resolves its options once, validates early, and
//     wraps every inner failure with call context via %w.
//   - A failed build consumes nothing: Pulse assembles atoms (values)
//     before touching the function, Sequence pre-validates every function
//     before the first ownership transfer.

package builder

import (
	"fmt"

	"github.com/pulselab/stimwave/stim"
)

// Pulse composes a complete five-atom charge-balanced pulse function from
// its main-pulse parameters.
//
// amplitude is the main-pulse amplitude in µA and must lie on the device
// grid ([-3060, 0] step 12, [-6120, -3060) step 24) — off-grid values fail
// with ErrAmplitudeOffGrid, out-of-range values with stim.ErrOutOfRange.
// duration is the main-pulse duration in µs, [10, 2550] in steps of 10.
//
// The counter pulse is derived exactly (-¼ amplitude, 4× duration); dead
// zones and the post-pulse pause come from WithDeadZone and
// WithPostPulsePause (both default to the 10 µs minimum).
func Pulse(amplitude int32, duration uint64, opts ...Option) (*stim.Function, error) {
	cfg := newFunctionConfig(opts...)

	if amplitude < stim.MinAmplitude || amplitude > 0 {
		return nil, fmt.Errorf("Pulse: main amplitude %d µA outside [%d, 0]: %w",
			amplitude, stim.MinAmplitude, stim.ErrOutOfRange)
	}
	if !stim.OnAmplitudeGrid(amplitude) {
		return nil, fmt.Errorf("Pulse: main amplitude %d µA: %w", amplitude, ErrAmplitudeOffGrid)
	}
	if duration < stim.MinRectDuration || duration > stim.MaxRectDuration ||
		duration%stim.RectDurationStep != 0 {
		return nil, fmt.Errorf("Pulse: main duration %d µs not in [%d, %d] step %d: %w",
			duration, stim.MinRectDuration, stim.MaxRectDuration, stim.RectDurationStep,
			stim.ErrOutOfRange)
	}

	// Grid amplitudes are multiples of 12, so the quarter is exact.
	main, err := stim.NewRectAtom(amplitude, duration)
	if err != nil {
		return nil, fmt.Errorf("Pulse: main atom: %w", err)
	}
	dead, err := stim.NewRectAtom(0, cfg.deadZone)
	if err != nil {
		return nil, fmt.Errorf("Pulse: dead zone atom: %w", err)
	}
	counter, err := stim.NewRectAtom(-amplitude/stim.CounterRatio, stim.CounterRatio*duration)
	if err != nil {
		return nil, fmt.Errorf("Pulse: counter atom: %w", err)
	}
	post, err := stim.NewRectAtom(0, cfg.postPause)
	if err != nil {
		return nil, fmt.Errorf("Pulse: post-pulse pause atom: %w", err)
	}

	f := stim.NewFunction()
	for i, a := range []stim.Atom{main, dead, counter, dead, post} {
		if err = f.Append(a); err != nil {
			return nil, fmt.Errorf("Pulse: atom %d: %w", i+1, err)
		}
	}

	return finishFunction(f, cfg)
}

// PauseFunction composes the one-atom stimulation-pause form. duration
// must lie on the pause grid {10, 80, 160, ..., 20400} µs.
func PauseFunction(duration uint64, opts ...Option) (*stim.Function, error) {
	cfg := newFunctionConfig(opts...)

	atom, err := stim.NewPauseAtom(duration)
	if err != nil {
		return nil, fmt.Errorf("PauseFunction: %w", err)
	}
	f := stim.NewFunction()
	if err = f.Append(atom); err != nil {
		return nil, fmt.Errorf("PauseFunction: %w", err)
	}

	return finishFunction(f, cfg)
}

// finishFunction applies the shared tail of the function config:
// repetitions, name, electrode targeting.
func finishFunction(f *stim.Function, cfg functionConfig) (*stim.Function, error) {
	if err := f.SetRepetitions(cfg.repetitions); err != nil {
		return nil, fmt.Errorf("repetitions: %w", err)
	}
	if cfg.name != "" {
		if err := f.SetName(cfg.name); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
	}
	if cfg.hasElectrodes {
		if err := f.SetVirtualStimulationElectrodes(cfg.source, cfg.destination, cfg.useGround); err != nil {
			return nil, fmt.Errorf("electrodes: %w", err)
		}
	}

	return f, nil
}

// Sequence assembles a command from functions in order, applying opts.
//
// Every function is pre-validated (non-nil, playable duration, not yet
// owned) before the first append, so a failed Sequence consumes nothing
// and every function stays reusable.
func Sequence(functions []*stim.Function, opts ...CommandOption) (*stim.Command, error) {
	if len(functions) == 0 {
		return nil, fmt.Errorf("Sequence: %w", ErrEmptySequence)
	}
	cfg := newCommandConfig(opts...)

	// Pre-validation pass: no ownership transfer yet.
	seen := make(map[*stim.Function]struct{}, len(functions))
	for i, f := range functions {
		if f == nil {
			return nil, fmt.Errorf("Sequence: function %d: %w", i, ErrNilFunction)
		}
		if f.Duration() == 0 {
			return nil, fmt.Errorf("Sequence: function %d has zero duration: %w", i, stim.ErrInvalidArgument)
		}
		if f.Owned() {
			return nil, fmt.Errorf("Sequence: function %d already belongs to a command: %w", i, stim.ErrOwned)
		}
		if _, dup := seen[f]; dup {
			return nil, fmt.Errorf("Sequence: function %d listed twice: %w", i, stim.ErrOwned)
		}
		seen[f] = struct{}{}
	}

	cmd := stim.NewCommand()
	if err := cmd.SetRepetitions(cfg.repetitions); err != nil {
		return nil, fmt.Errorf("Sequence: repetitions: %w", err)
	}
	if err := cmd.SetTracingID(cfg.tracingID); err != nil {
		return nil, fmt.Errorf("Sequence: tracing id: %w", err)
	}
	if cfg.name != "" {
		if err := cmd.SetName(cfg.name); err != nil {
			return nil, fmt.Errorf("Sequence: name: %w", err)
		}
	}
	for i, f := range functions {
		if err := cmd.Append(f); err != nil {
			return nil, fmt.Errorf("Sequence: append function %d: %w", i, err)
		}
	}

	return cmd, nil
}

// validate.go — legal-range constants, grid predicates and the
// five-position charge-balanced pulse rules.
//
// Design contract (strict):
//   - Deterministic, side-effect free predicates; pure integer arithmetic.
//   - Validation rejects, never rounds: a value off its grid fails exactly
//     as a value outside its range.
//   - Position rules receive the already-accepted prefix of the pulse and
//     judge only the candidate atom.

package stim

import "fmt"

// Legal-range constants for stimulation parameters. All amplitudes are in
// microamps, all durations in microseconds.
const (
	// MinAmplitude is the strongest legal main-pulse amplitude.
	MinAmplitude int32 = -6120

	// MaxCounterAmplitude is the strongest legal counter-pulse amplitude,
	// -¼ of MinAmplitude.
	MaxCounterAmplitude int32 = 1530

	// AmplitudeStepBoundary splits the amplitude grid: at or above it the
	// step is AmplitudeFineStep, below it AmplitudeCoarseStep.
	AmplitudeStepBoundary int32 = -3060

	// AmplitudeFineStep is the amplitude granularity in [-3060, 0] µA.
	AmplitudeFineStep int32 = 12

	// AmplitudeCoarseStep is the amplitude granularity below -3060 µA.
	AmplitudeCoarseStep int32 = 24

	// MinRectDuration and MaxRectDuration bound the main-pulse and
	// dead-zone durations; RectDurationStep is their granularity.
	MinRectDuration  uint64 = 10
	MaxRectDuration  uint64 = 2550
	RectDurationStep uint64 = 10

	// MinPauseDuration and MaxPauseDuration bound the pause grid.
	// The grid is discontinuous: 10 µs is legal, then multiples of
	// PauseDurationStep up to MaxPauseDuration.
	MinPauseDuration  uint64 = 10
	MaxPauseDuration  uint64 = 20400
	PauseDurationStep uint64 = 80

	// PulseAtomCount is the number of atoms in a complete
	// charge-balanced pulse.
	PulseAtomCount = 5

	// CounterRatio relates counter pulse to main pulse: the counter
	// amplitude is -1/CounterRatio of the main amplitude and the counter
	// duration is CounterRatio times the main duration, so the counter
	// cancels the main pulse's net charge exactly.
	CounterRatio = 4
)

// OnAmplitudeGrid reports whether amplitude lies on the device DAC grid
// for main pulses: [-3060, 0] µA in steps of 12, [-6120, -3060) µA in
// steps of 24. The legal set is
//
//	{-6120, -6096, ..., -3060, -3048, ..., -12, 0}
//
// The grid is enforced on the strict composition path (builder.Pulse);
// the raw model checks the range envelope only.
func OnAmplitudeGrid(amplitude int32) bool {
	if amplitude > 0 || amplitude < MinAmplitude {
		return false
	}
	if amplitude >= AmplitudeStepBoundary {
		return amplitude%AmplitudeFineStep == 0
	}

	return amplitude%AmplitudeCoarseStep == 0
}

// onRectDurationGrid accepts durations in [MinRectDuration,
// MaxPauseDuration] in steps of RectDurationStep. The wide upper bound
// admits counter pulses (4× the main maximum) and the post-pulse pause;
// per-position ceilings are applied by the pulse rules below.
func onRectDurationGrid(d uint64) bool {
	return d >= MinRectDuration && d <= MaxPauseDuration && d%RectDurationStep == 0
}

// onPauseDurationGrid accepts the discontinuous pause set
// {10, 80, 160, ..., 20400}.
func onPauseDurationGrid(d uint64) bool {
	if d == MinPauseDuration {
		return true
	}

	return d >= PauseDurationStep && d <= MaxPauseDuration && d%PauseDurationStep == 0
}

// validatePulseAtom judges whether atom may occupy position len(prefix)+1
// of a charge-balanced pulse, given the accepted prefix. Positions are:
//
//	1 main pulse, 2 dead zone 0, 3 counter pulse, 4 dead zone repeat,
//	5 dead zone 1 (post-pulse pause).
//
// Returns ErrInvalidComposition (wrapped with position context) on any
// violated relation, including an append beyond a complete pulse.
func validatePulseAtom(prefix []Atom, atom Atom) error {
	switch len(prefix) {
	case 0: // main pulse
		if atom.amplitude > 0 {
			return fmt.Errorf("main pulse amplitude %d µA must not be positive: %w",
				atom.amplitude, ErrInvalidComposition)
		}
		if atom.duration > MaxRectDuration {
			return fmt.Errorf("main pulse duration %d µs exceeds %d: %w",
				atom.duration, MaxRectDuration, ErrInvalidComposition)
		}
	case 1: // dead zone 0
		if err := validateDeadZone(atom); err != nil {
			return err
		}
	case 2: // counter pulse
		main := prefix[0]
		// Exact cancellation: 4·counter == -main, no truncating division.
		if int64(atom.amplitude)*CounterRatio != -int64(main.amplitude) {
			return fmt.Errorf("counter amplitude %d µA does not balance main %d µA: %w",
				atom.amplitude, main.amplitude, ErrInvalidComposition)
		}
		if atom.duration != CounterRatio*main.duration {
			return fmt.Errorf("counter duration %d µs must be %d (4× main): %w",
				atom.duration, CounterRatio*main.duration, ErrInvalidComposition)
		}
	case 3: // dead zone repeat, bit-for-bit identical to atom 2
		if !atom.Equal(prefix[1]) {
			return fmt.Errorf("dead zone repeat %s differs from dead zone 0 %s: %w",
				atom, prefix[1], ErrInvalidComposition)
		}
	case 4: // dead zone 1: zero amplitude on the pause grid
		if atom.amplitude != 0 {
			return fmt.Errorf("post-pulse pause amplitude %d µA must be 0: %w",
				atom.amplitude, ErrInvalidComposition)
		}
		if !onPauseDurationGrid(atom.duration) {
			return fmt.Errorf("post-pulse pause duration %d µs off the pause grid: %w",
				atom.duration, ErrInvalidComposition)
		}
	default: // pulse already complete
		return fmt.Errorf("pulse already holds %d atoms: %w", PulseAtomCount, ErrInvalidComposition)
	}

	return nil
}

// validateDeadZone checks the shared dead-zone shape: zero amplitude with
// a main-pulse-style duration ceiling.
func validateDeadZone(atom Atom) error {
	if atom.amplitude != 0 {
		return fmt.Errorf("dead zone amplitude %d µA must be 0: %w",
			atom.amplitude, ErrInvalidComposition)
	}
	if atom.duration > MaxRectDuration {
		return fmt.Errorf("dead zone duration %d µs exceeds %d: %w",
			atom.duration, MaxRectDuration, ErrInvalidComposition)
	}

	return nil
}

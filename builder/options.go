// options.go — functional options for pulse/pause functions and command
// sequences.
//
// Contract (strict):
//   • Options are functional and only record intent; validation happens
//     once, inside the build call, so failures surface as errors rather
//     than panics (stimulation parameters are user input, not programmer
//     error).
//   • No hidden globals; everything flows through the resolved config.
//   • Unset knobs fall back to documented defaults.

package builder

// Default dead-zone and post-pulse-pause durations in µs: the shortest
// legal values, chosen so a bare Pulse(amplitude, duration) is the
// tightest legal pulse.
const (
	DefaultDeadZone       uint64 = 10
	DefaultPostPulsePause uint64 = 10
)

// Option customizes a pulse or pause function before construction.
type Option func(*functionConfig)

// functionConfig is the resolved per-function configuration.
type functionConfig struct {
	repetitions   uint32
	name          string
	deadZone      uint64 // dead zone 0 and its repeat
	postPause     uint64 // dead zone 1
	source        []uint32
	destination   []uint32
	useGround     bool
	hasElectrodes bool
}

// newFunctionConfig resolves opts over the defaults.
func newFunctionConfig(opts ...Option) functionConfig {
	cfg := functionConfig{
		repetitions: 1,
		deadZone:    DefaultDeadZone,
		postPause:   DefaultPostPulsePause,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithRepetitions sets how many times the function's atom sequence is
// repeated. Zero is rejected by the build call with stim.ErrInvalidArgument.
func WithRepetitions(repetitions uint32) Option {
	return func(c *functionConfig) { c.repetitions = repetitions }
}

// WithName sets the function name.
func WithName(name string) Option {
	return func(c *functionConfig) { c.name = name }
}

// WithDeadZone sets the duration in µs of the pause between main and
// counter pulse (atoms 2 and 4 of the pulse form). Legal values lie in
// [10, 2550] in steps of 10; violations surface from the build call as
// stim errors.
func WithDeadZone(duration uint64) Option {
	return func(c *functionConfig) { c.deadZone = duration }
}

// WithPostPulsePause sets the duration in µs of the pause after the pulse
// (atom 5). Legal values form the discontinuous set {10, 80, 160, ...,
// 20400}; violations surface from the build call as stim errors.
func WithPostPulsePause(duration uint64) Option {
	return func(c *functionConfig) { c.postPause = duration }
}

// WithElectrodes targets the function at the given source and destination
// virtual electrodes, with stimulation to ground disabled. The sets must
// be disjoint and non-empty (stim.ErrInvalidArgument otherwise).
func WithElectrodes(source, destination []uint32) Option {
	return func(c *functionConfig) {
		c.source, c.destination = source, destination
		c.useGround = false
		c.hasElectrodes = true
	}
}

// WithGroundReturn targets the function at the given source virtual
// electrode with the implant's ground electrode as the return path; no
// destination set is required.
func WithGroundReturn(source []uint32) Option {
	return func(c *functionConfig) {
		c.source, c.destination = source, nil
		c.useGround = true
		c.hasElectrodes = true
	}
}

// CommandOption customizes a command built by Sequence.
type CommandOption func(*commandConfig)

// commandConfig is the resolved per-command configuration.
type commandConfig struct {
	repetitions uint16
	tracingID   uint16
	name        string
}

// newCommandConfig resolves opts over the defaults.
func newCommandConfig(opts ...CommandOption) commandConfig {
	cfg := commandConfig{repetitions: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithCommandRepetitions sets how many times the whole function sequence
// is executed. Zero is rejected by Sequence with stim.ErrInvalidArgument.
func WithCommandRepetitions(repetitions uint16) CommandOption {
	return func(c *commandConfig) { c.repetitions = repetitions }
}

// WithTracingID sets the opaque 16-bit id correlating command executions
// with external logs.
func WithTracingID(id uint16) CommandOption {
	return func(c *commandConfig) { c.tracingID = id }
}

// WithCommandName sets the command name.
func WithCommandName(name string) CommandOption {
	return func(c *commandConfig) { c.name = name }
}

package implant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulselab/stimwave/builder"
	"github.com/pulselab/stimwave/implant"
	"github.com/pulselab/stimwave/stim"
)

// recordingListener captures every notification in arrival order.
type recordingListener struct {
	states   []bool
	counters []uint64
}

func (l *recordingListener) OnStimulationStateChanged(stimulating bool) {
	l.states = append(l.states, stimulating)
}

func (l *recordingListener) OnStimulationFunctionFinished(executed uint64) {
	l.counters = append(l.counters, executed)
}

// trainCommand builds pulse×2 + rest under 3 command repetitions:
// 9 function occurrences, duration (530×2+80)×3 = 3420 µs.
func trainCommand(t *testing.T) *stim.Command {
	t.Helper()
	pulse, err := builder.Pulse(-3060, 100, builder.WithRepetitions(2), builder.WithName("pulse"))
	require.NoError(t, err)
	rest, err := builder.PauseFunction(80, builder.WithName("rest"))
	require.NoError(t, err)
	cmd, err := builder.Sequence([]*stim.Function{pulse, rest},
		builder.WithCommandRepetitions(3), builder.WithCommandName("train"))
	require.NoError(t, err)

	return cmd
}

// TestPlayback_RunToCompletion verifies the counter stream, the state
// transitions, and the elapsed/duration identity.
func TestPlayback_RunToCompletion(t *testing.T) {
	cmd := trainCommand(t)
	lst := &recordingListener{}
	engine := implant.NewPlayback(lst)

	require.NoError(t, engine.StartStimulation(cmd))

	assert.Equal(t, []bool{true, false}, lst.states)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6, 7, 8, 9}, lst.counters,
		"counter is monotone, one tick per unrolled occurrence")
	assert.EqualValues(t, 9, engine.Executed())
	assert.Equal(t, cmd.Duration(), engine.Elapsed(), "accounted time equals command duration")
	assert.True(t, cmd.Sealed(), "start takes ownership")
}

// TestPlayback_OwnershipIsSingleShot: a command already handed off cannot
// be started again, here or on another engine.
func TestPlayback_OwnershipIsSingleShot(t *testing.T) {
	cmd := trainCommand(t)
	engine := implant.NewPlayback(nil)
	require.NoError(t, engine.StartStimulation(cmd))

	assert.ErrorIs(t, engine.StartStimulation(cmd), stim.ErrOwned)
	assert.ErrorIs(t, implant.NewPlayback(nil).StartStimulation(cmd), stim.ErrOwned)

	// A clone is a fresh, unsealed copy and plays fine.
	require.NoError(t, engine.StartStimulation(cmd.Clone()))
	assert.EqualValues(t, 18, engine.Executed(), "counter accumulates across commands")
}

// TestPlayback_NilCommand rejects nil at the boundary.
func TestPlayback_NilCommand(t *testing.T) {
	assert.ErrorIs(t, implant.NewPlayback(nil).StartStimulation(nil), implant.ErrNilCommand)
}

// reentrantListener tries to start another command from inside a callback.
type reentrantListener struct {
	engine *implant.Playback
	spare  *stim.Command
	err    error
}

func (l *reentrantListener) OnStimulationStateChanged(bool) {}

func (l *reentrantListener) OnStimulationFunctionFinished(uint64) {
	if l.err == nil {
		l.err = l.engine.StartStimulation(l.spare)
	}
}

// TestPlayback_ReentrantStartIsBusy: the engine models one control
// connection; starting from a callback fails with ErrBusy.
func TestPlayback_ReentrantStartIsBusy(t *testing.T) {
	lst := &reentrantListener{spare: trainCommand(t)}
	lst.engine = implant.NewPlayback(lst)

	require.NoError(t, lst.engine.StartStimulation(trainCommand(t)))
	assert.ErrorIs(t, lst.err, implant.ErrBusy)
	assert.False(t, lst.spare.Sealed(), "busy rejection must not take ownership")
}

// stoppingListener requests a stop after n finished occurrences.
type stoppingListener struct {
	engine *implant.Playback
	after  uint64
}

func (l *stoppingListener) OnStimulationStateChanged(bool) {}

func (l *stoppingListener) OnStimulationFunctionFinished(executed uint64) {
	if executed == l.after {
		_ = l.engine.StopStimulation()
	}
}

// TestPlayback_StopAborts: a stop from a callback ends playback after the
// current occurrence; stopping an idle engine is a no-op.
func TestPlayback_StopAborts(t *testing.T) {
	lst := &stoppingListener{after: 4}
	lst.engine = implant.NewPlayback(lst)

	require.NoError(t, lst.engine.StartStimulation(trainCommand(t)))
	assert.EqualValues(t, 4, lst.engine.Executed(), "playback stopped after the 4th occurrence")

	require.NoError(t, implant.NewPlayback(nil).StopStimulation())
}

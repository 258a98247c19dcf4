package stim_test

import (
	"testing"

	"github.com/pulselab/stimwave/stim"
)

// benchCommand builds a command with n pause functions of r repetitions
// each, under c command repetitions.
func benchCommand(b *testing.B, n int, r uint32, c uint16) *stim.Command {
	b.Helper()
	cmd := stim.NewCommand()
	for i := 0; i < n; i++ {
		f := stim.NewFunction()
		atom, err := stim.NewPauseAtom(80)
		if err != nil {
			b.Fatal(err)
		}
		if err = f.Append(atom); err != nil {
			b.Fatal(err)
		}
		if err = f.SetRepetitions(r); err != nil {
			b.Fatal(err)
		}
		if err = cmd.Append(f); err != nil {
			b.Fatal(err)
		}
	}
	if err := cmd.SetRepetitions(c); err != nil {
		b.Fatal(err)
	}

	return cmd
}

// BenchmarkRepetitionAwareIterator measures the fully expanded traversal
// of 1000 functions × 8 repetitions × 4 command passes (32k yields).
func BenchmarkRepetitionAwareIterator(b *testing.B) {
	cmd := benchCommand(b, 1000, 8, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		it := cmd.RepetitionAwareIterator()
		for it.HasNext() {
			if _, err := it.Next(); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkCommandDuration measures duration arithmetic over 1000 functions.
func BenchmarkCommandDuration(b *testing.B) {
	cmd := benchCommand(b, 1000, 8, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cmd.Duration()
	}
}

// BenchmarkCommandClone measures the deep copy of a 1000-function command.
func BenchmarkCommandClone(b *testing.B) {
	cmd := benchCommand(b, 1000, 8, 4)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cmd.Clone()
	}
}

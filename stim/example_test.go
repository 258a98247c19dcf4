package stim_test

import (
	"fmt"
	"strings"

	"github.com/pulselab/stimwave/stim"
)

// ExampleCommand_RepetitionAwareIterator composes a two-function command
// and unrolls it exactly as the hardware would execute it.
//
// Scenario:
//
//	F1 — a pause of 80 µs, repeated twice
//	F2 — a pause of 160 µs, executed once
//	command repetitions = 3
//
// The fully repetition-aware traversal therefore yields
// 3 × (2 + 1) = 9 elements.
func ExampleCommand_RepetitionAwareIterator() {
	f1 := stim.NewFunction()
	atom, _ := stim.NewPauseAtom(80)
	_ = f1.Append(atom)
	_ = f1.SetRepetitions(2)
	_ = f1.SetName("F1")

	f2 := stim.NewFunction()
	atom, _ = stim.NewPauseAtom(160)
	_ = f2.Append(atom)
	_ = f2.SetName("F2")

	cmd := stim.NewCommand()
	_ = cmd.Append(f1)
	_ = cmd.Append(f2)
	_ = cmd.SetRepetitions(3)

	it := cmd.RepetitionAwareIterator()
	var names []string
	for it.HasNext() {
		f, _ := it.Next()
		names = append(names, f.Name())
	}
	fmt.Println(strings.Join(names, " "))
	fmt.Printf("duration=%dµs\n", cmd.Duration())
	// Output:
	// F1 F1 F2 F1 F1 F2 F1 F1 F2
	// duration=960µs
}

// ExampleFunction_Append walks the five appends of a charge-balanced
// pulse: main, dead zone, counter (-¼ amplitude, 4× duration), dead zone
// repeat, post-pulse pause.
func ExampleFunction_Append() {
	f := stim.NewFunction()

	main, _ := stim.NewRectAtom(-3060, 100)
	dead, _ := stim.NewRectAtom(0, 10)
	counter, _ := stim.NewRectAtom(765, 400)
	post, _ := stim.NewRectAtom(0, 80)

	for _, a := range []stim.Atom{main, dead, counter, dead, post} {
		if err := f.Append(a); err != nil {
			fmt.Println("append:", err)

			return
		}
	}
	fmt.Printf("atoms=%d period=%dµs\n", f.Size(), f.Period())
	// Output:
	// atoms=5 period=600µs
}

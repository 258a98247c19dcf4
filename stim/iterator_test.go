package stim_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/pulselab/stimwave/stim"
)

// drain exhausts an iterator and returns every yielded function.
func drain(t *testing.T, it stim.Iterator[*stim.Function]) []*stim.Function {
	t.Helper()
	var out []*stim.Function
	for it.HasNext() {
		f, err := it.Next()
		if err != nil {
			t.Fatalf("Next with HasNext=true: %v", err)
		}
		out = append(out, f)
	}

	return out
}

// names maps yielded functions to their names.
func names(fns []*stim.Function) []string {
	out := make([]string, len(fns))
	for i, f := range fns {
		out[i] = f.Name()
	}

	return out
}

// repetitionFixture builds the contract scenario: F1(repetitions=2, one
// atom), F2(repetitions=1, one atom), command repetitions 3.
func repetitionFixture(t *testing.T) *stim.Command {
	t.Helper()
	cmd := stim.NewCommand()

	f1 := stim.NewFunction()
	if err := f1.Append(mustPause(t, 80)); err != nil {
		t.Fatal(err)
	}
	if err := f1.SetRepetitions(2); err != nil {
		t.Fatal(err)
	}
	if err := f1.SetName("F1"); err != nil {
		t.Fatal(err)
	}

	f2 := stim.NewFunction()
	if err := f2.Append(mustPause(t, 160)); err != nil {
		t.Fatal(err)
	}
	if err := f2.SetName("F2"); err != nil {
		t.Fatal(err)
	}

	if err := cmd.Append(f1); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Append(f2); err != nil {
		t.Fatal(err)
	}
	if err := cmd.SetRepetitions(3); err != nil {
		t.Fatal(err)
	}

	return cmd
}

// TestIterator_Plain yields each function once, in append order.
func TestIterator_Plain(t *testing.T) {
	cmd := repetitionFixture(t)
	got := names(drain(t, cmd.FunctionIterator()))
	want := []string{"F1", "F2"}
	if len(got) != cmd.Size() {
		t.Fatalf("plain iterator length = %d; want Size() = %d", len(got), cmd.Size())
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("plain order = %v; want %v", got, want)
		}
	}
}

// TestIterator_CommandRepetitionAware yields the whole sequence once per
// command repetition, ignoring function repetitions.
func TestIterator_CommandRepetitionAware(t *testing.T) {
	cmd := repetitionFixture(t)
	got := names(drain(t, cmd.CommandRepetitionAwareIterator()))
	want := []string{"F1", "F2", "F1", "F2", "F1", "F2"}
	if len(got) != cmd.Size()*int(cmd.Repetitions()) {
		t.Fatalf("length = %d; want Size×Repetitions = %d", len(got), cmd.Size()*int(cmd.Repetitions()))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v; want %v", got, want)
		}
	}
}

// TestIterator_RepetitionAware pins the fully expanded contract scenario:
// exactly 9 elements, F1 F1 F2 | F1 F1 F2 | F1 F1 F2.
func TestIterator_RepetitionAware(t *testing.T) {
	cmd := repetitionFixture(t)
	got := names(drain(t, cmd.RepetitionAwareIterator()))
	want := []string{"F1", "F1", "F2", "F1", "F1", "F2", "F1", "F1", "F2"}
	if len(got) != len(want) {
		t.Fatalf("length = %d; want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v; want %v", got, want)
		}
	}
}

// TestIterator_OutOfBounds verifies stepping past the end on all three
// strategies and on the atom iterator.
func TestIterator_OutOfBounds(t *testing.T) {
	cmd := repetitionFixture(t)
	iterators := map[string]stim.Iterator[*stim.Function]{
		"Plain":        cmd.FunctionIterator(),
		"CommandAware": cmd.CommandRepetitionAwareIterator(),
		"FullyAware":   cmd.RepetitionAwareIterator(),
	}
	for name, it := range iterators {
		t.Run(name, func(t *testing.T) {
			drain(t, it)
			if it.HasNext() {
				t.Fatal("HasNext = true after drain")
			}
			if _, err := it.Next(); !errors.Is(err, stim.ErrOutOfBounds) {
				t.Errorf("Next past end error = %v; want ErrOutOfBounds", err)
			}
		})
	}

	t.Run("Atoms", func(t *testing.T) {
		f := buildPulse(t, -1000, 200, 10, 80)
		it := f.AtomIterator()
		count := 0
		for it.HasNext() {
			if _, err := it.Next(); err != nil {
				t.Fatal(err)
			}
			count++
		}
		if count != stim.PulseAtomCount {
			t.Fatalf("atom iterator length = %d; want %d", count, stim.PulseAtomCount)
		}
		if _, err := it.Next(); !errors.Is(err, stim.ErrOutOfBounds) {
			t.Errorf("Next past end error = %v; want ErrOutOfBounds", err)
		}
	})
}

// TestIterator_EmptyCommand: all strategies are immediately exhausted.
func TestIterator_EmptyCommand(t *testing.T) {
	cmd := stim.NewCommand()
	if err := cmd.SetRepetitions(5); err != nil {
		t.Fatal(err)
	}
	for name, it := range map[string]stim.Iterator[*stim.Function]{
		"Plain":        cmd.FunctionIterator(),
		"CommandAware": cmd.CommandRepetitionAwareIterator(),
		"FullyAware":   cmd.RepetitionAwareIterator(),
	} {
		if it.HasNext() {
			t.Errorf("%s: HasNext = true on empty command", name)
		}
		if _, err := it.Next(); !errors.Is(err, stim.ErrOutOfBounds) {
			t.Errorf("%s: Next error = %v; want ErrOutOfBounds", name, err)
		}
	}
}

// TestIterator_IndependentCursors: two iterators over one command do not
// disturb each other.
func TestIterator_IndependentCursors(t *testing.T) {
	cmd := repetitionFixture(t)
	a := cmd.RepetitionAwareIterator()
	b := cmd.RepetitionAwareIterator()

	fa, err := a.Next()
	if err != nil {
		t.Fatal(err)
	}
	if fa.Name() != "F1" {
		t.Fatalf("first element = %s; want F1", fa.Name())
	}
	// b still starts from the beginning.
	if got := names(drain(t, b)); len(got) != 9 {
		t.Fatalf("second iterator length = %d; want 9", len(got))
	}
	// a continues from its own cursor: 8 remaining.
	if got := names(drain(t, a)); len(got) != 8 {
		t.Fatalf("first iterator remaining = %d; want 8", len(got))
	}
}

// TestIterator_ConcurrentReaders walks many iterators over the same
// command in parallel; contents are immutable once attached, so this must
// be race-free and deterministic per iterator.
func TestIterator_ConcurrentReaders(t *testing.T) {
	cmd := repetitionFixture(t)
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			it := cmd.RepetitionAwareIterator()
			count := 0
			for it.HasNext() {
				if _, err := it.Next(); err != nil {
					t.Error(err)

					return
				}
				count++
			}
			if count != 9 {
				t.Errorf("concurrent drain length = %d; want 9", count)
			}
		}()
	}
	wg.Wait()
}

// TestIterator_SnapshotIsolation: appending after iterator creation must
// not extend an already obtained iterator.
func TestIterator_SnapshotIsolation(t *testing.T) {
	cmd := stim.NewCommand()
	f := stim.NewFunction()
	if err := f.Append(mustPause(t, 80)); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Append(f); err != nil {
		t.Fatal(err)
	}

	it := cmd.FunctionIterator()
	late := stim.NewFunction()
	if err := late.Append(mustPause(t, 80)); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Append(late); err != nil {
		t.Fatal(err)
	}

	if got := len(drain(t, it)); got != 1 {
		t.Fatalf("iterator saw %d functions; want the 1 present at creation", got)
	}
	if got := len(drain(t, cmd.FunctionIterator())); got != 2 {
		t.Fatalf("fresh iterator saw %d functions; want 2", got)
	}
}

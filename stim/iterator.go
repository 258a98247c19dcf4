// iterator.go — the three repetition-expansion strategies over a
// command's function sequence, behind one capability interface.
//
// Every iterator is lazy, finite, forward-only and non-restartable:
// obtain a fresh iterator to retraverse. Iterators snapshot the function
// sequence and the relevant repetition counts at creation and hold
// independent cursors, so any number of them may walk the same command
// concurrently.

package stim

import "fmt"

// Iterator is a finite forward traversal yielding elements of type T.
//
// HasNext reports whether another element remains; Next yields it and
// advances. Stepping past the last element fails with ErrOutOfBounds and
// the zero T. No iterator permits mutation of the underlying element.
type Iterator[T any] interface {
	HasNext() bool
	Next() (T, error)
}

// FunctionIterator returns an iterator yielding each appended function
// exactly once, in append order. It ignores both command and function
// repetitions; its length equals Size().
func (c *Command) FunctionIterator() Iterator[*Function] {
	return &plainFuncIterator{functions: c.snapshot()}
}

// CommandRepetitionAwareIterator returns an iterator yielding the whole
// function sequence, in order, Repetitions() times. Function-level
// repetitions are ignored; its length equals Size() × Repetitions().
func (c *Command) CommandRepetitionAwareIterator() Iterator[*Function] {
	return &commandRepIterator{functions: c.snapshot(), passes: uint64(c.repetitions)}
}

// RepetitionAwareIterator returns the fully expanded traversal: within
// each of the Repetitions() command passes, each function is yielded once
// per its own repetition count. For functions F1(rep=2), F2(rep=1) and
// command repetitions 3 the sequence is
//
//	F1 F1 F2 | F1 F1 F2 | F1 F1 F2
//
// Its length equals Repetitions() × Σ function.Repetitions().
func (c *Command) RepetitionAwareIterator() Iterator[*Function] {
	return &fullRepIterator{functions: c.snapshot(), passes: uint64(c.repetitions)}
}

// snapshot pins the current function sequence. The returned slice has its
// capacity clipped to its length so later appends to the command allocate
// elsewhere and never alias the iterator's view.
func (c *Command) snapshot() []*Function {
	return c.functions[:len(c.functions):len(c.functions)]
}

// plainFuncIterator walks the flat sequence once.
type plainFuncIterator struct {
	functions []*Function
	idx       int
}

// HasNext reports whether an unvisited function remains.
func (it *plainFuncIterator) HasNext() bool { return it.idx < len(it.functions) }

// Next yields the next function in append order.
func (it *plainFuncIterator) Next() (*Function, error) {
	if !it.HasNext() {
		return nil, fmt.Errorf("function iterator exhausted after %d elements: %w",
			len(it.functions), ErrOutOfBounds)
	}
	f := it.functions[it.idx]
	it.idx++

	return f, nil
}

// commandRepIterator walks the flat sequence passes times.
type commandRepIterator struct {
	functions []*Function
	passes    uint64 // command repetitions
	pass      uint64 // completed passes
	idx       int    // position within the current pass
}

// HasNext reports whether any pass still has an unvisited function.
func (it *commandRepIterator) HasNext() bool {
	return len(it.functions) > 0 && it.pass < it.passes
}

// Next yields the next function, restarting the sequence at each pass
// boundary until all command repetitions are exhausted.
func (it *commandRepIterator) Next() (*Function, error) {
	if !it.HasNext() {
		return nil, fmt.Errorf("command-repetition iterator exhausted after %d elements: %w",
			uint64(len(it.functions))*it.passes, ErrOutOfBounds)
	}
	f := it.functions[it.idx]
	it.idx++
	if it.idx == len(it.functions) {
		it.idx = 0
		it.pass++
	}

	return f, nil
}

// fullRepIterator expands both repetition levels: function repetitions
// inside command passes.
type fullRepIterator struct {
	functions []*Function
	passes    uint64 // command repetitions
	pass      uint64 // completed command passes
	idx       int    // current function within the pass
	rep       uint32 // yields of the current function so far
}

// HasNext reports whether the fully expanded sequence has more elements.
func (it *fullRepIterator) HasNext() bool {
	return len(it.functions) > 0 && it.pass < it.passes
}

// Next yields the current function until its repetition count is spent,
// then advances to the next function, then to the next command pass.
func (it *fullRepIterator) Next() (*Function, error) {
	if !it.HasNext() {
		return nil, fmt.Errorf("repetition-aware iterator exhausted: %w", ErrOutOfBounds)
	}
	f := it.functions[it.idx]
	it.rep++
	if it.rep >= f.repetitions {
		it.rep = 0
		it.idx++
		if it.idx == len(it.functions) {
			it.idx = 0
			it.pass++
		}
	}

	return f, nil
}

// atomIterator walks a function's atom sequence once, repetition-unaware.
type atomIterator struct {
	atoms []Atom
	idx   int
}

// HasNext reports whether an unvisited atom remains.
func (it *atomIterator) HasNext() bool { return it.idx < len(it.atoms) }

// Next yields the next atom in append order.
func (it *atomIterator) Next() (Atom, error) {
	if !it.HasNext() {
		return Atom{}, fmt.Errorf("atom iterator exhausted after %d elements: %w",
			len(it.atoms), ErrOutOfBounds)
	}
	a := it.atoms[it.idx]
	it.idx++

	return a, nil
}

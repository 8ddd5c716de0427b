package workerpool

import (
	"github.com/stacklab/stack-soak/journal"
	"github.com/stacklab/stack-soak/stack"
)

// exercise runs the deterministic workload against the stack while it is
// held exclusively: iters repetitions of a six-step block of intermixed
// pushes and pops. Block i uses values 3i+1, 3i+2, 3i+3, so every push
// value across the run is distinct. Each block drains what it pushed, so
// the stack comes back to its prior state after every block.
func exercise(st *stack.Stack[int], j *journal.Journal, iters uint) error {
	for i := 0; i < int(iters); i++ {
		if err := pushAndLog(st, j, i*3+1); err != nil {
			return err
		}
		if err := pushAndLog(st, j, i*3+2); err != nil {
			return err
		}
		if err := popAndLog(st, j); err != nil {
			return err
		}
		if err := pushAndLog(st, j, i*3+3); err != nil {
			return err
		}
		if err := popAndLog(st, j); err != nil {
			return err
		}
		if err := popAndLog(st, j); err != nil {
			return err
		}
	}
	return nil
}

func pushAndLog(st *stack.Stack[int], j *journal.Journal, v int) error {
	st.Push(v)
	pushesTotal.Inc()
	return j.Appendf("Pushing %d", v)
}

// popAndLog records the value actually popped, or the empty-stack line.
// The workload never leaves the stack empty at a pop site, but an empty
// pop is a logged outcome, not an error.
func popAndLog(st *stack.Stack[int], j *journal.Journal) error {
	v, ok := st.Pop()
	if !ok {
		emptyPopsTotal.Inc()
		return j.Appendf("Stack was empty, nothing to pop")
	}
	popsTotal.Inc()
	return j.Appendf("Popped %d", v)
}

// Package shared pairs one stack with one journal behind a single mutex.
// The two resources form one exclusivity domain: a holder's pushes and the
// lines recording them never interleave with another holder's.
package shared

import (
	"errors"
	"fmt"
	"sync"

	"github.com/stacklab/stack-soak/journal"
	"github.com/stacklab/stack-soak/stack"
)

// ErrPoisoned is returned by WithExclusiveAccess once a previous holder
// has panicked inside its critical section. The wrapped data may be
// inconsistent and unflushed; the policy is fail-fast, not recovery.
var ErrPoisoned = errors.New("shared state poisoned by a previous holder")

// State is the jointly-guarded {stack, journal} pair all workers share.
type State[T any] struct {
	mu       sync.Mutex
	poisoned bool
	stack    *stack.Stack[T]
	journal  *journal.Journal
}

// New binds a stack and a journal into one exclusivity domain.
func New[T any](st *stack.Stack[T], j *journal.Journal) *State[T] {
	return &State[T]{stack: st, journal: j}
}

// WithExclusiveAccess blocks until the caller is the sole holder of the
// {stack, journal} pair, runs f with both, and releases unconditionally —
// even when f fails or panics. Acquisition order across waiting callers is
// whatever the runtime mutex grants; no fairness is promised.
//
// A panic in f marks the state poisoned and comes back as an error rather
// than unwinding the worker goroutine; every later caller then fails with
// ErrPoisoned.
func (s *State[T]) WithExclusiveAccess(f func(*stack.Stack[T], *journal.Journal) error) (err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.poisoned {
		return ErrPoisoned
	}

	defer func() {
		if r := recover(); r != nil {
			s.poisoned = true
			err = fmt.Errorf("holder panicked, poisoning shared state: %v", r)
		}
	}()

	return f(s.stack, s.journal)
}

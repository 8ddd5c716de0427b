package workerpool

import (
	"sync"

	"go.uber.org/zap"

	"github.com/stacklab/stack-soak/journal"
	"github.com/stacklab/stack-soak/shared"
	"github.com/stacklab/stack-soak/stack"
)

// Defaults for the soak run, matching the baseline workload.
const (
	DefaultWorkers      = 200
	DefaultOpsPerWorker = 500
)

// Config carries the initializer variables for the pool.
type Config struct {
	Workers      uint
	OpsPerWorker uint
	State        *shared.State[int]
	Log          *zap.SugaredLogger
}

// WorkerPool drives a fixed population of workers against one shared
// {stack, journal} pair. Each worker holds the pair for its entire
// operation sequence, so the run is a total order over workers; which
// permutation comes out depends only on lock acquisition order.
type WorkerPool struct {
	workers   uint
	ops       uint
	state     *shared.State[int]
	log       *zap.SugaredLogger
	mu        sync.Mutex
	completed uint
	done      bool
}

// Status is a point-in-time view of the run for the status API.
type Status struct {
	Workers   uint `json:"workers"`
	Completed uint `json:"completed"`
	Done      bool `json:"done"`
}

// New builds a pool from the config, falling back to the baseline
// population and workload when either is zero.
func New(config *Config) *WorkerPool {
	pool := &WorkerPool{
		workers: config.Workers,
		ops:     config.OpsPerWorker,
		state:   config.State,
		log:     config.Log,
	}
	if pool.workers == 0 {
		pool.workers = DefaultWorkers
	}
	if pool.ops == 0 {
		pool.ops = DefaultOpsPerWorker
	}
	return pool
}

// worker is the internal representation of one concurrent task.
type worker struct {
	id     uint
	ops    uint
	state  *shared.State[int]
	errors chan<- workerError
	close  chan<- uint
	log    *zap.SugaredLogger
}

// workerError for cases where the worker ends up failing for a specific reason
type workerError struct {
	id  uint
	err error
}

// Run spawns the full worker population, then blocks until every worker
// has finished or one of them has failed. The first failure aborts the
// run and is returned; workers still waiting on the lock are abandoned to
// process teardown, which is the fail-fast policy for a run whose log is
// already known to be incomplete.
func (pool *WorkerPool) Run() error {
	// errors channel for workers to send back errors
	errors := make(chan workerError)

	// close channel for workers to report normal exit; simply dump the
	// worker ID back on the channel
	close := make(chan uint)

	for id := uint(0); id < pool.workers; id++ {
		pool.spawnWorker(id, errors, close)
	}
	pool.log.Debugw("spawned workers", "count", pool.workers)

	for finished := uint(0); finished < pool.workers; {
		select {
		case werr := <-errors:
			pool.log.Errorw("worker failed, aborting run", "workerID", werr.id, "error", werr.err)
			pool.markDone()
			return werr.err
		case id := <-close:
			finished++
			pool.markCompleted()
			pool.log.Debugw("worker finished", "workerID", id, "finished", finished)
		}
	}

	pool.markDone()
	return nil
}

// Snapshot returns the current run status.
func (pool *WorkerPool) Snapshot() Status {
	pool.mu.Lock()
	defer pool.mu.Unlock()
	return Status{Workers: pool.workers, Completed: pool.completed, Done: pool.done}
}

func (pool *WorkerPool) markCompleted() {
	pool.mu.Lock()
	pool.completed++
	pool.mu.Unlock()
}

func (pool *WorkerPool) markDone() {
	pool.mu.Lock()
	pool.done = true
	pool.mu.Unlock()
}

func (pool *WorkerPool) spawnWorker(id uint, errors chan<- workerError, close chan<- uint) {
	w := &worker{
		id:     id,
		ops:    pool.ops,
		state:  pool.state,
		errors: errors,
		close:  close,
		log:    pool.log,
	}
	go w.run()
}

func (w *worker) run() {
	// One acquisition for the whole sequence. Holding the pair across all
	// blocks keeps each worker's output contiguous in the journal; do not
	// narrow this to per-operation locking.
	err := w.state.WithExclusiveAccess(func(st *stack.Stack[int], j *journal.Journal) error {
		return exercise(st, j, w.ops)
	})
	if err != nil {
		w.errors <- workerError{id: w.id, err: err}
		return
	}
	w.close <- w.id
}

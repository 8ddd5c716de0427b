package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/segmentio/ksuid"
	"go.uber.org/zap"

	flag "github.com/ogier/pflag"

	"github.com/stacklab/stack-soak/httpapi"
	"github.com/stacklab/stack-soak/journal"
	"github.com/stacklab/stack-soak/shared"
	"github.com/stacklab/stack-soak/stack"
	"github.com/stacklab/stack-soak/workerpool"
)

var workers = flag.UintP("workers", "w", workerpool.DefaultWorkers, "Number of concurrent workers in the pool.")
var opsPerWorker = flag.UintP("ops-per-worker", "n", workerpool.DefaultOpsPerWorker, "Iterations of the push/pop block each worker runs.")
var output = flag.StringP("output", "f", "output.txt", "Path of the append-only operation log.")
var statusAddr = flag.StringP("status-addr", "s", "", "Address to serve the status API on (disabled when empty).")

func main() {
	flag.Parse()

	// Logger
	rawLogger, _ := zap.NewDevelopment()
	defer rawLogger.Sync()
	logger := rawLogger.Sugar()

	runID := ksuid.New().String()
	logger = logger.With("runID", runID)

	// Journal: created before any worker exists, closed after the last
	// one is joined. A failure here aborts before anything is spawned.
	j, err := journal.Open(*output)
	if err != nil {
		logger.Fatalf("unable to open journal. Error: %s", err)
	}

	state := shared.New(stack.New[int](), j)

	pool := workerpool.New(&workerpool.Config{
		Workers:      *workers,
		OpsPerWorker: *opsPerWorker,
		State:        state,
		Log:          logger.Named("WorkerPool"),
	})

	// Status API
	if *statusAddr != "" {
		srv := httpapi.StatusAPI(runID, pool, *statusAddr)
		go func() {
			logger.Debugf("starting status API on %s", *statusAddr)
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Errorw("unable to start status API server", "error", err)
			}
		}()
		defer srv.Shutdown(context.TODO())
	}

	logger.Debugw("starting run", "workers", *workers, "opsPerWorker", *opsPerWorker, "output", *output)
	if err := pool.Run(); err != nil {
		// An aborted run means the journal is missing data; do not
		// pretend otherwise.
		logger.Fatalf("run aborted. Error: %s", err)
	}

	if err := j.Close(); err != nil {
		logger.Fatalf("unable to flush journal. Error: %s", err)
	}
	logger.Debugw("journal flushed", "lines", j.Lines())

	fmt.Println("Program complete.")
}

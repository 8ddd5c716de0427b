package httpapi

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
)

// StatusAPI creates the status API server for a run.
func StatusAPI(runID string, run RunInfo, addr string) *http.Server {
	router := httprouter.New()

	api := &HTTPAPI{RunID: runID, Run: run}
	api.RegisterRoutes(router)

	handler := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	return handler
}

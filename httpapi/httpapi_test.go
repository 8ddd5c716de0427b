package httpapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/julienschmidt/httprouter"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/stacklab/stack-soak/workerpool"
)

type fakeRun struct {
	status workerpool.Status
}

func (f fakeRun) Snapshot() workerpool.Status { return f.status }

func newTestRouter(run RunInfo) *httprouter.Router {
	router := httprouter.New()
	api := &HTTPAPI{RunID: "test-run", Run: run}
	api.RegisterRoutes(router)
	return router
}

func TestStatusEndpoint(t *testing.T) {
	Convey("GET /v1/status reflects the pool snapshot", t, func() {
		router := newTestRouter(fakeRun{status: workerpool.Status{
			Workers:   4,
			Completed: 2,
			Done:      false,
		}})

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/status", nil))

		So(resp.Code, ShouldEqual, http.StatusOK)
		So(resp.Header().Get("Content-Type"), ShouldEqual, "application/json")

		var status StatusResponse
		So(json.Unmarshal(resp.Body.Bytes(), &status), ShouldBeNil)
		So(status.RunID, ShouldEqual, "test-run")
		So(status.Workers, ShouldEqual, uint(4))
		So(status.Completed, ShouldEqual, uint(2))
		So(status.Done, ShouldBeFalse)
	})
}

func TestHealthEndpoint(t *testing.T) {
	Convey("GET /healthz returns an empty response envelope", t, func() {
		router := newTestRouter(fakeRun{})

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		So(resp.Code, ShouldEqual, http.StatusOK)

		var body Response
		So(json.Unmarshal(resp.Body.Bytes(), &body), ShouldBeNil)
		So(body.Errors, ShouldBeEmpty)
	})
}

func TestMetricsEndpoint(t *testing.T) {
	Convey("GET /metrics serves the prometheus registry", t, func() {
		router := newTestRouter(fakeRun{})

		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))

		So(resp.Code, ShouldEqual, http.StatusOK)
		So(resp.Body.String(), ShouldContainSubstring, "stacksoak_workerpool_pushes_total")
	})
}

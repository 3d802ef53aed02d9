package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
)

func newContainer(route restful.RouteFunction) *restful.Container {
	container := restful.NewContainer()
	container.Filter(Logger)
	container.Filter(RecoverPanic)

	ws := new(restful.WebService)
	ws.Path("/test").Produces(restful.MIME_JSON)
	ws.Route(ws.GET("").To(route))
	container.Add(ws)
	return container
}

func TestRecoverPanic(t *testing.T) {
	container := newContainer(func(req *restful.Request, resp *restful.Response) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", recorder.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Code != http.StatusInternalServerError || response.Details != "internal error" {
		t.Errorf("Unexpected error response: %+v", response)
	}
}

func TestHandleError(t *testing.T) {
	container := newContainer(func(req *restful.Request, resp *restful.Response) {
		HandleError(resp, ErrEmptyTask, http.StatusBadRequest)
	})

	recorder := httptest.NewRecorder()
	container.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/test", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", recorder.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Error != "Bad Request" || response.Details != ErrEmptyTask.Error() {
		t.Errorf("Unexpected error response: %+v", response)
	}
}

package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ShayCichocki/devcrew/internal/catalog"
	"github.com/ShayCichocki/devcrew/internal/config"
	"github.com/ShayCichocki/devcrew/internal/orchestrator"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(config.Default(), orchestrator.New(catalog.Default()))
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func createWorkflow(t *testing.T, s *Server, workflowType string) map[string]any {
	t.Helper()
	w := doJSON(t, s, http.MethodPost, "/workflows", payload{
		"workflow_type": workflowType,
		"description":   "ship the thing",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	return decode(t, w)
}

type payload = map[string]any

func TestRootEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.Equal(t, "devcrew", body["service"])
	require.Len(t, body["agents"], 7)
	require.Len(t, body["templates"], 6)
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "healthy", decode(t, w)["status"])
}

func TestMetricsEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateWorkflow(t *testing.T) {
	s := newTestServer(t)
	body := createWorkflow(t, s, "bug-fix")

	require.NotEmpty(t, body["workflow_id"])
	require.Len(t, body["task_ids"], 6)

	next, ok := body["next_task"].(map[string]any)
	require.True(t, ok, "expected a next task")
	require.Equal(t, "qa", next["agent"])
}

func TestCreateWorkflowUnknownType(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/workflows", payload{
		"workflow_type": "time-travel",
		"description":   "impossible",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, decode(t, w)["error"], "unknown workflow type")
}

func TestCreateWorkflowMissingFields(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/workflows", payload{"workflow_type": "bug-fix"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetWorkflow(t *testing.T) {
	s := newTestServer(t)
	created := createWorkflow(t, s, "refactoring")

	w := doJSON(t, s, http.MethodGet, "/workflows/"+created["workflow_id"].(string), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	wf := body["workflow"].(map[string]any)
	require.Equal(t, "refactoring", wf["type"])
	require.Equal(t, "active", wf["status"])
	require.Len(t, body["tasks"], 5)
}

func TestGetWorkflowNotFound(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/workflows/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestListWorkflows(t *testing.T) {
	s := newTestServer(t)
	createWorkflow(t, s, "bug-fix")
	createWorkflow(t, s, "refactoring")

	w := doJSON(t, s, http.MethodGet, "/workflows", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["workflows"], 2)
}

func TestNextTasks(t *testing.T) {
	s := newTestServer(t)
	createWorkflow(t, s, "bug-fix")

	w := doJSON(t, s, http.MethodGet, "/tasks/next", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["next_tasks"], 1)
}

func TestCompleteTaskFlow(t *testing.T) {
	s := newTestServer(t)
	created := createWorkflow(t, s, "bug-fix")
	taskIDs := created["task_ids"].([]any)
	first := taskIDs[0].(string)

	w := doJSON(t, s, http.MethodPost, "/tasks/"+first+"/complete", payload{
		"output":    "diagnosed",
		"artifacts": []string{"repro.md"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	completed := body["completed_task"].(map[string]any)
	require.Equal(t, "completed", completed["status"])

	next := body["next_tasks"].([]any)
	require.Len(t, next, 1)
	require.Equal(t, taskIDs[1].(string), next[0].(map[string]any)["id"])

	progress := body["workflow_progress"].(map[string]any)
	require.EqualValues(t, 6, progress["total_tasks"])
	require.EqualValues(t, 1, progress["completed_tasks"])

	// Completing again conflicts.
	w = doJSON(t, s, http.MethodPost, "/tasks/"+first+"/complete", payload{})
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestCompleteUnknownTask(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodPost, "/tasks/nope/complete", payload{})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTask(t *testing.T) {
	s := newTestServer(t)
	created := createWorkflow(t, s, "bug-fix")
	first := created["task_ids"].([]any)[0].(string)

	w := doJSON(t, s, http.MethodGet, "/tasks/"+first, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "qa", decode(t, w)["agent"])

	w = doJSON(t, s, http.MethodGet, "/tasks/nope", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAgentEndpoints(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/agents", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["agents"], 7)

	w = doJSON(t, s, http.MethodGet, "/agents/architect", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "architect", decode(t, w)["name"])

	w = doJSON(t, s, http.MethodGet, "/agents/intern", nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAgentResponse(t *testing.T) {
	s := newTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/agents/qa/response", payload{
		"analysis":       "all suites green",
		"recommendation": "ship it",
	})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "logged", decode(t, w)["status"])

	w = doJSON(t, s, http.MethodPost, "/agents/intern/response", payload{"analysis": "hi"})
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestTemplatesEndpoint(t *testing.T) {
	s := newTestServer(t)
	w := doJSON(t, s, http.MethodGet, "/templates", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decode(t, w)["templates"], 6)
}

func TestStatusEndpoint(t *testing.T) {
	s := newTestServer(t)
	created := createWorkflow(t, s, "bug-fix")
	first := created["task_ids"].([]any)[0].(string)
	w := doJSON(t, s, http.MethodPost, "/tasks/"+first+"/complete", payload{"output": "done"})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodGet, "/status", nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode(t, w)
	require.EqualValues(t, 1, body["active_workflows"])
	require.EqualValues(t, 6, body["total_tasks"])
	require.EqualValues(t, 1, body["completed_tasks"])
}

package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eyalcohen4/ag-ui-tests/model"
	"github.com/eyalcohen4/ag-ui-tests/runner"
	"github.com/eyalcohen4/ag-ui-tests/tool"
)

func newTestServer(m *model.ScriptedModel) *Server {
	r := runner.New(m, tool.NewRegistry(tool.NewCalculateTool(), tool.NewWeatherTool()))
	return New(r)
}

func scriptedHello() *model.ScriptedModel {
	m := model.NewScriptedModel()
	m.AddTurn(
		model.Chunk{Content: "Hello!"},
		model.Chunk{FinishReason: model.FinishReasonStop},
	)
	return m
}

const validBody = `{"threadId": "t1", "runId": "r1", "messages": [{"role": "user", "content": "Hi"}]}`

// sseEvents parses an SSE body into its decoded JSON event payloads.
func sseEvents(t *testing.T, body string) []map[string]any {
	t.Helper()
	var events []map[string]any
	for _, frame := range strings.Split(body, "\n\n") {
		if frame == "" {
			continue
		}
		require.True(t, strings.HasPrefix(frame, "data: "), "frame %q lacks data prefix", frame)
		var ev map[string]any
		require.NoError(t, json.Unmarshal([]byte(strings.TrimPrefix(frame, "data: ")), &ev))
		events = append(events, ev)
	}
	return events
}

func TestChat_StreamsSSE(t *testing.T) {
	srv := httptest.NewServer(newTestServer(scriptedHello()).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(validBody))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Cache-Control"), "no-cache")
	assert.Equal(t, "no", resp.Header.Get("X-Accel-Buffering"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	events := sseEvents(t, string(raw))
	require.NotEmpty(t, events)
	assert.Equal(t, "RUN_STARTED", events[0]["type"])
	assert.Equal(t, "t1", events[0]["threadId"])
	assert.Equal(t, "r1", events[0]["runId"])
	assert.Equal(t, "RUN_FINISHED", events[len(events)-1]["type"])

	var deltas []string
	for _, ev := range events {
		if ev["type"] == "TEXT_MESSAGE_CONTENT" {
			deltas = append(deltas, ev["delta"].(string))
		}
	}
	assert.Equal(t, []string{"Hello!"}, deltas)
}

func TestChat_NegotiatesNDJSON(t *testing.T) {
	srv := httptest.NewServer(newTestServer(scriptedHello()).Handler())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodPost, srv.URL+"/", strings.NewReader(validBody))
	require.NoError(t, err)
	req.Header.Set("Accept", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.NotEmpty(t, lines)
	assert.NotContains(t, lines[0], "data: ")
	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "RUN_STARTED", first["type"])
}

func TestChat_SnakeCaseBodyAccepted(t *testing.T) {
	srv := httptest.NewServer(newTestServer(scriptedHello()).Handler())
	defer srv.Close()

	body := `{"thread_id": "t1", "run_id": "r1", "messages": [{"role": "user", "content": "Hi"}]}`
	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	events := sseEvents(t, string(raw))
	require.NotEmpty(t, events)
	assert.Equal(t, "t1", events[0]["threadId"])
}

func TestChat_RejectsInvalidInput(t *testing.T) {
	srv := httptest.NewServer(newTestServer(model.NewScriptedModel()).Handler())
	defer srv.Close()

	for name, body := range map[string]string{
		"missing identifiers": `{"messages": []}`,
		"malformed json":      `{"threadId": `,
	} {
		t.Run(name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(body))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
		})
	}
}

func TestHealth(t *testing.T) {
	srv := httptest.NewServer(newTestServer(model.NewScriptedModel()).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"ok"}`, string(raw))
}

func TestDebug_EchoesBody(t *testing.T) {
	srv := httptest.NewServer(newTestServer(model.NewScriptedModel()).Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/debug", "application/json", strings.NewReader(`{"hello": "world"}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, map[string]any{"received": map[string]any{"hello": "world"}}, out)
}

func TestCORS(t *testing.T) {
	srv := httptest.NewServer(newTestServer(model.NewScriptedModel()).Handler())
	defer srv.Close()

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Headers"))
}

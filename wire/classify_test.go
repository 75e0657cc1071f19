package wire

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifySuccess(t *testing.T) {
	t.Parallel()

	resp := &response{
		status:     http.StatusOK,
		statusText: "200 OK",
		body:       []byte(`{"sessionId":"abc","status":0,"value":"hello"}`),
	}
	reply, err := classify(http.MethodGet, "/session/abc/title", resp, "abc")
	require.NoError(t, err)
	assert.Equal(t, "abc", reply.SessionID.String)
	assert.JSONEq(t, `"hello"`, string(reply.Value))
}

func TestClassifyBadJSON(t *testing.T) {
	t.Parallel()

	resp := &response{status: http.StatusOK, body: []byte(`<html>not json</html>`)}
	_, err := classify(http.MethodGet, "/status", resp, "")

	var badJSON *BadJSONError
	require.ErrorAs(t, err, &badJSON)
	assert.Equal(t, []byte(`<html>not json</html>`), badJSON.Body)
}

func TestClassifyFailedCommand(t *testing.T) {
	t.Parallel()

	resp := &response{
		status: http.StatusInternalServerError,
		body:   []byte(`{"sessionId":"srv-9","status":7,"value":{"message":"boom"}}`),
	}
	_, err := classify(http.MethodPost, "/session/abc/element", resp, "abc")

	var failed *FailedCommandError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, FailedNoSuchElement, failed.Type)
	assert.Equal(t, "boom", failed.Info.Message)
	// Enrichment: the failure carries the caller's session id, while the
	// server-reported one stays observable.
	assert.Equal(t, "abc", failed.Info.SessionID)
	assert.Equal(t, "srv-9", failed.Info.ServerSessionID.String)
}

func TestClassifyFailedCommandUnmatchedCode(t *testing.T) {
	t.Parallel()

	resp := &response{
		status: http.StatusInternalServerError,
		body:   []byte(`{"status":9999,"value":{"message":"??"}}`),
	}
	_, err := classify(http.MethodGet, "/session/abc/url", resp, "abc")

	var failed *FailedCommandError
	require.ErrorAs(t, err, &failed)
	assert.Equal(t, FailedUnknownError, failed.Type)
}

func TestClassifyUnstructured500(t *testing.T) {
	t.Parallel()

	resp := &response{status: http.StatusInternalServerError, body: []byte("stack trace soup")}
	_, err := classify(http.MethodGet, "/session/abc/url", resp, "abc")

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "stack trace soup", serverErr.Message)
}

func TestClassifyUnknownCommand(t *testing.T) {
	t.Parallel()

	for _, status := range []int{
		http.StatusNotFound, http.StatusMethodNotAllowed, http.StatusNotImplemented,
	} {
		resp := &response{status: status, body: []byte("no such route")}
		_, err := classify(http.MethodPost, "/session/abc/teleport", resp, "abc")

		var unknown *UnknownCommandError
		require.ErrorAs(t, err, &unknown, "status %d", status)
		assert.Equal(t, "/session/abc/teleport", unknown.Path)
		assert.Equal(t, http.MethodPost, unknown.Method)
	}
}

func TestClassifyBadGateway(t *testing.T) {
	t.Parallel()

	resp := &response{status: http.StatusBadGateway, body: []byte("upstream died")}
	_, err := classify(http.MethodGet, "/status", resp, "")

	var serverErr *ServerError
	assert.ErrorAs(t, err, &serverErr)
}

func TestClassifyUnknownStatus(t *testing.T) {
	t.Parallel()

	resp := &response{
		status:     http.StatusTeapot,
		statusText: "418 I'm a teapot",
		body:       []byte("short and stout"),
	}
	_, err := classify(http.MethodGet, "/status", resp, "")

	var statusErr *HTTPStatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusTeapot, statusErr.Code)
	assert.Equal(t, "418 I'm a teapot", statusErr.Status)
	assert.Equal(t, "short and stout", statusErr.Body)

	// Not any of the other kinds.
	var serverErr *ServerError
	assert.False(t, errors.As(err, &serverErr))
}

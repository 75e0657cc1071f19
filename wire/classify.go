package wire

import (
	"encoding/json"
	"net/http"

	"gopkg.in/guregu/null.v3"
)

// serverReply is the protocol's response envelope.
type serverReply struct {
	SessionID null.String     `json:"sessionId"`
	Status    int             `json:"status"`
	Value     json.RawMessage `json:"value"`
}

// classify maps one raw HTTP exchange onto the failure taxonomy, or returns
// the decoded envelope on success.
//
// sessionID is the id of the session that issued the command. A classified
// FailedCommandError always carries it as the failure's session context,
// regardless of what the server reported; the server's own id is preserved
// separately on the info.
func classify(method, path string, resp *response, sessionID string) (*serverReply, error) {
	switch {
	case resp.status >= 200 && resp.status < 300:
		var reply serverReply
		if err := json.Unmarshal(resp.body, &reply); err != nil {
			return nil, &BadJSONError{Err: err, Body: resp.body}
		}
		return &reply, nil

	case resp.status == http.StatusInternalServerError:
		var reply serverReply
		if err := json.Unmarshal(resp.body, &reply); err != nil {
			// A 500 without the structured error body is a generic fault.
			return nil, &ServerError{Message: string(resp.body)}
		}
		var info FailedCommandInfo
		if err := json.Unmarshal(reply.Value, &info); err != nil {
			return nil, &ServerError{Message: string(resp.body)}
		}
		info.ServerSessionID = reply.SessionID
		info.SessionID = sessionID
		return nil, &FailedCommandError{
			Type: failedCommandTypeFor(reply.Status),
			Info: info,
		}

	case resp.status == http.StatusNotFound,
		resp.status == http.StatusMethodNotAllowed,
		resp.status == http.StatusNotImplemented:
		return nil, &UnknownCommandError{
			Method:  method,
			Path:    path,
			Message: string(resp.body),
		}

	case resp.status > 500:
		return nil, &ServerError{Message: string(resp.body)}

	default:
		return nil, &HTTPStatusError{
			Code:   resp.status,
			Status: resp.statusText,
			Body:   string(resp.body),
		}
	}
}

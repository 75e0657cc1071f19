package wire

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
)

// RequestRecord is the request half of a history entry.
type RequestRecord struct {
	Method string
	Path   string
	Body   []byte
}

// ResponseRecord is the response half of a history entry.
type ResponseRecord struct {
	Status int
	Body   []byte
}

// HistoryEntry records one executed command and the server's raw answer.
// The ID is generated client-side and also appears in the debug log, which
// makes a dumped history entry findable in the log stream.
type HistoryEntry struct {
	ID       uuid.UUID
	Request  RequestRecord
	Response ResponseRecord
}

// record appends one completed exchange to the session's history. Together
// with the one-time id assignment during creation, this is the only way
// session state changes.
func (s *Session) record(method, path string, reqBody []byte, resp *response) {
	e := HistoryEntry{
		ID: uuid.New(),
		Request: RequestRecord{
			Method: method,
			Path:   path,
			Body:   reqBody,
		},
		Response: ResponseRecord{
			Status: resp.status,
			Body:   resp.body,
		},
	}
	s.history = append(s.history, e)
	s.logger.Debugf("Session:record", "cmd:%s %s %s -> %d", e.ID, method, path, resp.status)
}

// History returns a snapshot of the session's command history, oldest
// first.
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// DumpHistory writes a colorized, human-oriented rendering of the command
// history to w, one line per command.
func (s *Session) DumpHistory(w io.Writer) {
	var (
		method = color.New(color.FgCyan).SprintFunc()
		ok     = color.New(color.FgGreen).SprintFunc()
		bad    = color.New(color.FgRed).SprintFunc()
	)
	for i, e := range s.history {
		status := ok(e.Response.Status)
		if e.Response.Status >= 400 {
			status = bad(e.Response.Status)
		}
		fmt.Fprintf(w, "%3d %s %s %s -> %s\n",
			i, e.ID, method(e.Request.Method), e.Request.Path, status)
	}
}

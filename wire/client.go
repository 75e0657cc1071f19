package wire

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/oxtoacart/bpool"

	"github.com/xdriver/jsonwire/log"
)

const jsonContentType = "application/json;charset=UTF-8"

// Client sends wire-protocol requests to one automation server. It is the
// transport half of the engine: send bytes, get status and body back.
// Everything above it (codec, classification) lives on Session.
type Client struct {
	base   *url.URL
	http   *http.Client
	bufs   *bpool.BufferPool
	logger *log.Logger
}

// NewClient returns a client for the server at host:port. A nil httpClient
// falls back to http.DefaultClient. The returned error, if any, is an
// *InvalidURLError.
func NewClient(host string, port uint16, httpClient *http.Client, logger *log.Logger) (*Client, error) {
	addr := fmt.Sprintf("http://%s:%d/", host, port)
	base, err := url.Parse(addr)
	if err != nil {
		return nil, &InvalidURLError{URL: addr, Err: err}
	}
	if host == "" {
		return nil, &InvalidURLError{URL: addr, Err: fmt.Errorf("empty host")}
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		base:   base,
		http:   httpClient,
		bufs:   bpool.NewBufferPool(4),
		logger: logger,
	}, nil
}

// response is the raw outcome of one HTTP exchange.
type response struct {
	status     int
	statusText string
	body       []byte
}

func (c *Client) do(ctx context.Context, method, path string, headers http.Header, body []byte) (*response, error) {
	u := *c.base
	u.Path = path

	var r io.Reader
	if len(body) > 0 {
		buf := c.bufs.Get()
		defer c.bufs.Put(buf)
		buf.Write(body)
		r = buf
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), r)
	if err != nil {
		return nil, &InvalidURLError{URL: u.String(), Err: err}
	}
	req.Header.Set("Accept", jsonContentType)
	if len(body) > 0 {
		req.Header.Set("Content-Type", jsonContentType)
	}
	for k, vs := range headers {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}

	c.logger.Debugf("Client:do", "%s %s (%d request bytes)", method, u.String(), len(body))
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &ConnError{Err: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &ConnError{Err: fmt.Errorf("reading response body: %w", err)}
	}
	c.logger.Debugf("Client:do", "%s %s -> %s (%d response bytes)", method, u.String(), resp.Status, len(rb))

	return &response{
		status:     resp.StatusCode,
		statusText: resp.Status,
		body:       rb,
	}, nil
}

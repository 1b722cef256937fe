package catalog

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// loggingRoundTripper wraps an underlying transport and emits one line per
// request and response (including latency) when verbose logging is enabled.
type loggingRoundTripper struct {
	base http.RoundTripper
	w    io.Writer
}

func (t *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	if t.w != nil {
		_, _ = fmt.Fprintf(t.w, "[verbose] fetch: %s %s\n", req.Method, req.URL.String())
	}
	resp, err := t.base.RoundTrip(req)
	dur := time.Since(start)
	if t.w != nil {
		if err != nil {
			_, _ = fmt.Fprintf(t.w, "[verbose] fetch: error after %s: %v\n", dur.Truncate(time.Millisecond), err)
		} else {
			_, _ = fmt.Fprintf(t.w, "[verbose] fetch: %d %s (%s)\n", resp.StatusCode, http.StatusText(resp.StatusCode), dur.Truncate(time.Millisecond))
		}
	}
	return resp, err
}

// NewHTTPClient returns the client used for catalog fetches. With verbose
// enabled, every request and response is logged to writer (stderr when nil)
// so structured output on stdout stays clean.
func NewHTTPClient(verbose bool, writer io.Writer) *http.Client {
	transport := http.DefaultTransport
	if verbose {
		if writer == nil {
			writer = os.Stderr
		}
		transport = &loggingRoundTripper{base: transport, w: writer}
	}
	return &http.Client{
		Transport: transport,
		Timeout:   30 * time.Second,
	}
}

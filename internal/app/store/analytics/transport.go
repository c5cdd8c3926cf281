// internal/app/store/analytics/transport.go
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/dalemusser/xenodash/internal/app/system/limits"
	"github.com/dalemusser/xenodash/internal/app/system/requestid"
)

// endpoint joins a base URL with a path, tolerating trailing slashes on the
// base and optional query values.
func endpoint(base, path string, q url.Values) string {
	u := strings.TrimRight(base, "/") + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	return u
}

// newRequest builds a request with a JSON body (when body != nil) and the
// caller's request id.
func newRequest(ctx context.Context, method, rawURL string, body any) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, rdr)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if id := requestid.FromContext(ctx); id != "" {
		req.Header.Set(requestid.Header, id)
	}
	return req, nil
}

// send performs req and returns the raw body of a 2xx response. Any other
// status becomes an *APIError.
func send(hc *http.Client, req *http.Request) ([]byte, error) {
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, limits.MaxErrorBody))
		return nil, &APIError{
			Method:  req.Method,
			Path:    req.URL.Path,
			Status:  resp.StatusCode,
			Message: parseMessage(b),
		}
	}

	b, err := io.ReadAll(io.LimitReader(resp.Body, limits.MaxUpstreamBody+1))
	if err != nil {
		return nil, err
	}
	if len(b) > limits.MaxUpstreamBody {
		return nil, fmt.Errorf("%s %s: response exceeds %d bytes", req.Method, req.URL.Path, limits.MaxUpstreamBody)
	}
	return b, nil
}

// sendJSON performs req and decodes a 2xx body into out.
func sendJSON(hc *http.Client, req *http.Request, out any) error {
	b, err := send(hc, req)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("analytics: decode %s %s: %w", req.Method, req.URL.Path, err)
	}
	return nil
}

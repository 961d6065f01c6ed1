// Package clients holds the thin callers for the four external verification
// services. Each call returns a structured result or (nil, nil) when the
// service had nothing for the input; a not-verified outcome is a result, not
// an error. Transport and decoding problems are the only errors returned.
package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"loandraft/pkg/platform/sentinel"
)

type doer interface {
	Do(req *http.Request) (*http.Response, error)
}

func newHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// getJSON issues a GET and decodes the body into out. A 404 means the service
// had no result for the input and is reported as (found=false, nil error).
func getJSON(ctx context.Context, client doer, rawURL string, out interface{}) (found bool, raw []byte, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return false, nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return false, nil, fmt.Errorf("call %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return false, nil, nil
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return false, nil, fmt.Errorf("call %s: status %d: %w", rawURL, resp.StatusCode, sentinel.ErrUnavailable)
	}
	if resp.StatusCode != http.StatusOK {
		return false, nil, fmt.Errorf("call %s: unexpected status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return false, nil, fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return false, nil, fmt.Errorf("decode response: %w", err)
	}
	return true, body, nil
}

func joinURL(base string, elem ...string) string {
	u := strings.TrimRight(base, "/")
	for _, e := range elem {
		u += "/" + url.PathEscape(e)
	}
	return u
}

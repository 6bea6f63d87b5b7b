package common

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/johanforsgren/gitcollection/internal/logger"
)

const (
	maxLoggedBody   = 4096
	RequestIDHeader = "X-Request-Id"
)

var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
	"api-key":       true,
	"x-auth-token":  true,
	"cookie":        true,
	"set-cookie":    true,
}

// LoggingTransport wraps an http.RoundTripper and logs every exchange under
// a per-request correlation ID.
type LoggingTransport struct {
	Transport http.RoundTripper
	newID     func() string
}

func NewLoggingTransport(transport http.RoundTripper) *LoggingTransport {
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &LoggingTransport{
		Transport: transport,
		newID:     func() string { return uuid.New().String() },
	}
}

func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	id := t.newID()
	start := time.Now()

	req = req.Clone(req.Context())
	req.Header.Set(RequestIDHeader, id)

	logger.LogRequest(id, req.Method, req.URL.String())
	logger.Log("%s", formatHeaders("request "+id, req.Header))

	resp, err := t.Transport.RoundTrip(req)
	duration := time.Since(start)

	if err != nil {
		logger.LogError("HTTP_REQUEST", fmt.Sprintf("%s %s %s", id, req.Method, req.URL.Path), err)
		return nil, err
	}

	t.logResponse(id, req, resp, duration)
	return resp, nil
}

func (t *LoggingTransport) logResponse(id string, req *http.Request, resp *http.Response, duration time.Duration) {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "response %s: %s %s - %s (%v)\n", id, req.Method, req.URL.Path, resp.Status, duration)

	if resp.Body != nil && resp.ContentLength != 0 {
		body, err := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		if err == nil {
			resp.Body = io.NopCloser(bytes.NewReader(body))

			if len(body) > 0 && len(body) <= maxLoggedBody {
				fmt.Fprintf(&buf, "Body (%d bytes):\n%s\n", len(body), body)
			} else if len(body) > maxLoggedBody {
				fmt.Fprintf(&buf, "Body: (%d bytes, too large to log)\n", len(body))
			}
		} else {
			resp.Body = io.NopCloser(bytes.NewReader(nil))
			logger.LogError("HTTP_READ_BODY", id, err)
		}
	}

	logger.Log("%s", buf.String())
}

func formatHeaders(title string, header http.Header) string {
	var b strings.Builder
	b.WriteString(title + " headers:\n")
	for name, values := range header {
		if isSensitiveHeader(name) {
			fmt.Fprintf(&b, "  %s: [REDACTED]\n", name)
			continue
		}
		for _, value := range values {
			fmt.Fprintf(&b, "  %s: %s\n", name, value)
		}
	}
	return b.String()
}

func isSensitiveHeader(name string) bool {
	return sensitiveHeaders[strings.ToLower(name)]
}

package fetch

import (
	"context"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout = 20 * time.Second
	defaultRetries = 3
	defaultBackoff = 500 * time.Millisecond
)

// RetryPolicy bounds the automatic recovery at the HTTP boundary. This is
// the only place the pipeline retries anything: exhausting the budget
// demotes the failure to the unit level, where it is absorbed.
type RetryPolicy struct {
	Retries int
	Backoff time.Duration
}

// NewClient builds an HTTP client with a per-attempt timeout and bounded
// retry with exponential backoff on timeouts and transient statuses. Only
// idempotent verbs are retried. The client-level timeout caps the whole
// exchange: every attempt plus the backoffs between them.
func NewClient(timeout time.Duration, policy RetryPolicy) *http.Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if policy.Retries <= 0 {
		policy.Retries = defaultRetries
	}
	if policy.Backoff <= 0 {
		policy.Backoff = defaultBackoff
	}

	budget := time.Duration(policy.Retries+1) * timeout
	backoff := policy.Backoff
	for i := 0; i < policy.Retries; i++ {
		budget += backoff
		backoff *= 2
	}

	return &http.Client{
		Timeout: budget,
		Transport: &retryTransport{
			base:    http.DefaultTransport,
			timeout: timeout,
			retries: policy.Retries,
			backoff: policy.Backoff,
		},
	}
}

type retryTransport struct {
	base    http.RoundTripper
	timeout time.Duration
	retries int
	backoff time.Duration
}

func retriable(status int) bool {
	switch status {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// cancelBody releases the attempt deadline once the caller is done with the
// response body.
type cancelBody struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b cancelBody) Close() error {
	b.cancel()
	return b.ReadCloser.Close()
}

// RoundTrip gives each attempt its own deadline, so a timed-out attempt
// consumes retry budget like a 5xx does instead of failing the exchange.
// Only the caller's own cancellation stops the loop early.
func (t *retryTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		return t.base.RoundTrip(req)
	}

	backoff := t.backoff
	for attempt := 0; ; attempt++ {
		ctx, cancel := context.WithTimeout(req.Context(), t.timeout)
		resp, err := t.base.RoundTrip(req.Clone(ctx))
		if err == nil && !retriable(resp.StatusCode) {
			resp.Body = cancelBody{resp.Body, cancel}
			return resp, nil
		}

		if attempt >= t.retries {
			if resp != nil {
				resp.Body = cancelBody{resp.Body, cancel}
				return resp, nil
			}
			cancel()
			return nil, err
		}

		if resp != nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
		cancel()

		select {
		case <-req.Context().Done():
			return nil, req.Context().Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}
}

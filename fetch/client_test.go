package fetch

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestClient_RetriesTransientStatuses(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, RetryPolicy{Retries: 3, Backoff: time.Millisecond})

	resp, err := client.Get(ts.URL)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("incorrect status: expected 200 got %d", resp.StatusCode)
	}
	if calls != 3 {
		t.Errorf("incorrect number of attempts: expected 3 got %d", calls)
	}
}

func TestClient_RetriesTimeouts(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) < 3 {
			// Stall until the client gives up on this attempt.
			<-r.Context().Done()
			return
		}
		w.Write([]byte("ok"))
	}))
	defer ts.Close()

	client := NewClient(100*time.Millisecond, RetryPolicy{Retries: 3, Backoff: time.Millisecond})

	resp, err := client.Get(ts.URL)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("incorrect status: expected 200 got %d", resp.StatusCode)
	}
	if calls != 3 {
		t.Errorf("incorrect number of attempts: expected 3 got %d", calls)
	}
}

func TestClient_TimeoutRetryBudgetIsBounded(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		<-r.Context().Done()
	}))
	defer ts.Close()

	client := NewClient(50*time.Millisecond, RetryPolicy{Retries: 2, Backoff: time.Millisecond})

	resp, err := client.Get(ts.URL)
	if err == nil {
		resp.Body.Close()
		t.Fatal("expected an error, got none")
	}

	// Initial attempt plus two retries.
	if calls != 3 {
		t.Errorf("incorrect number of attempts: expected 3 got %d", calls)
	}
}

func TestClient_BoundedRetryBudget(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, RetryPolicy{Retries: 2, Backoff: time.Millisecond})

	resp, err := client.Get(ts.URL)
	if err != nil {
		t.Fatal("error getting:", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("incorrect status: expected 500 got %d", resp.StatusCode)
	}
	// Initial attempt plus two retries.
	if calls != 3 {
		t.Errorf("incorrect number of attempts: expected 3 got %d", calls)
	}
}

func TestClient_NonIdempotentVerbsAreNotRetried(t *testing.T) {
	var calls int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer ts.Close()

	client := NewClient(5*time.Second, RetryPolicy{Retries: 3, Backoff: time.Millisecond})

	resp, err := client.Post(ts.URL, "text/plain", nil)
	if err != nil {
		t.Fatal("error posting:", err)
	}
	defer resp.Body.Close()

	if calls != 1 {
		t.Errorf("incorrect number of attempts: expected 1 got %d", calls)
	}
}

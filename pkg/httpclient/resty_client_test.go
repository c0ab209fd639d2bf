package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRestyClientGetUsesBaseURLAndHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("expected GET, got %s", r.Method)
		}
		if r.URL.Path != "/v1/ping" {
			t.Errorf("expected path /v1/ping, got %s", r.URL.Path)
		}
		if got := r.Header.Get("X-Default"); got != "d" {
			t.Errorf("expected default header, got %q", got)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer call" {
			t.Errorf("expected overriding Authorization, got %q", got)
		}
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))
	defer srv.Close()

	client := NewRestyClient(Options{
		BaseURL: srv.URL,
		Headers: map[string]string{
			"X-Default":     "d",
			"Authorization": "Bearer static",
		},
		Timeout: 2 * time.Second,
	})
	defer client.Close()

	resp, err := client.Get(context.Background(), "/v1/ping", map[string]string{"Authorization": "Bearer call"})
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if resp.StatusCode() != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, resp.StatusCode())
	}
	if string(resp.Body()) != "short and stout" {
		t.Fatalf("unexpected body %q", resp.Body())
	}
}

func TestRestyClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewRestyClient(Options{BaseURL: url, Timeout: time.Second})
	if _, err := client.Get(context.Background(), "/", nil); err == nil {
		t.Fatalf("expected error against a closed server")
	}
}

func TestRestyClientCloseIsIdempotent(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewRestyClient(Options{BaseURL: srv.URL})
	if err := client.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := client.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	_, err := client.Get(context.Background(), "/", nil)
	if !errors.Is(err, ErrClosed) {
		t.Fatalf("expected ErrClosed, got %v", err)
	}
	if hits != 0 {
		t.Fatalf("closed transport reached the server %d times", hits)
	}
}

package authdog

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetricsRecordOutcomes(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetricsWithRegistry(registry)

	ft := &fakeTransport{}
	c, err := NewClient("https://api.authdog.com", WithTransport(ft), WithMetrics(metrics))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer c.Close()

	calls := []struct {
		resp fakeResponse
		err  error
	}{
		{resp: fakeResponse{status: http.StatusOK, body: []byte(`{}`)}},
		{resp: fakeResponse{status: http.StatusOK, body: []byte(`{}`)}},
		{resp: fakeResponse{status: http.StatusUnauthorized}},
		{resp: fakeResponse{status: http.StatusInternalServerError, body: []byte(`{"error": "GraphQL query failed"}`)}},
		{err: errors.New("connection refused")},
	}
	for _, call := range calls {
		ft.resp, ft.err = call.resp, call.err
		_, _ = c.GetUserInfo(context.Background(), "token")
	}

	want := map[string]float64{
		OutcomeSuccess:        2,
		OutcomeUnauthorized:   1,
		OutcomeAPIError:       1,
		OutcomeTransportError: 1,
	}
	for outcome, n := range want {
		if got := testutil.ToFloat64(metrics.requestsTotal.WithLabelValues(outcome)); got != n {
			t.Errorf("requests_total{outcome=%q} = %v, want %v", outcome, got, n)
		}
	}
	if got := testutil.CollectAndCount(metrics.requestDuration); got != 4 {
		t.Errorf("expected 4 duration series, got %d", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.observe(OutcomeSuccess, 0)
}

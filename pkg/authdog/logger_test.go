package authdog

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
)

type recordingLogger struct {
	debug []string
}

func (r *recordingLogger) InfoObj(string, string, interface{}) {}
func (r *recordingLogger) DebugObj(msg, key string, obj interface{}) {
	r.debug = append(r.debug, fmt.Sprintf("%s %s=%v", msg, key, obj))
}
func (r *recordingLogger) WarnObj(string, string, interface{})  {}
func (r *recordingLogger) ErrorObj(string, string, interface{}) {}

func TestClientLogsRequestOutcome(t *testing.T) {
	log := &recordingLogger{}
	ft := &fakeTransport{resp: fakeResponse{status: http.StatusUnauthorized}}

	c, err := NewClient("https://api.authdog.com", WithTransport(ft), WithLogger(log))
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	defer c.Close()

	_, _ = c.GetUserInfo(context.Background(), "secret-token")

	if len(log.debug) != 1 {
		t.Fatalf("expected one debug entry, got %d", len(log.debug))
	}
	entry := log.debug[0]
	if !strings.Contains(entry, OutcomeUnauthorized) {
		t.Fatalf("entry %q missing outcome", entry)
	}
	if strings.Contains(entry, "secret-token") {
		t.Fatalf("entry %q leaks the access token", entry)
	}
}

func TestEnsureLoggerDefaultsToNoop(t *testing.T) {
	if _, ok := ensureLogger(nil).(noopLogger); !ok {
		t.Fatalf("expected noopLogger for nil input")
	}
	log := &recordingLogger{}
	if ensureLogger(log) != Logger(log) {
		t.Fatalf("expected supplied logger to be kept")
	}
}

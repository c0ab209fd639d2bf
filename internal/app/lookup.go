package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/authdog/authdog-go-sdk/internal/config"
	"github.com/authdog/authdog-go-sdk/internal/logger"
	"github.com/authdog/authdog-go-sdk/pkg/authdog"
	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"
)

// ErrMissingToken is returned when neither the caller nor the config supplies
// an access token.
var ErrMissingToken = errors.New("access token is required")

// Lookup is the userinfo command runtime. It owns one authdog.Client and
// renders fetched payloads to out.
type Lookup struct {
	cfg      *config.Config
	client   *authdog.Client
	log      logger.Logger
	out      io.Writer
	registry *prometheus.Registry
}

// NewLookup builds the runtime from cfg. Extra options are applied after the
// ones derived from cfg.
func NewLookup(cfg *config.Config, log logger.Logger, out io.Writer, opts ...authdog.Option) (*Lookup, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}
	if out == nil {
		return nil, fmt.Errorf("output writer must not be nil")
	}
	if log == nil {
		log = &logger.NopLogger{}
	}

	l := &Lookup{cfg: cfg, log: log, out: out}

	clientOpts := []authdog.Option{
		authdog.WithAPIKey(cfg.APIKey),
		authdog.WithTimeout(cfg.Timeout),
		authdog.WithLogger(log),
	}
	if cfg.MetricsEnabled {
		l.registry = prometheus.NewRegistry()
		clientOpts = append(clientOpts, authdog.WithMetrics(authdog.NewMetricsWithRegistry(l.registry)))
	}
	clientOpts = append(clientOpts, opts...)

	client, err := authdog.NewClient(cfg.BaseURL, clientOpts...)
	if err != nil {
		return nil, fmt.Errorf("create authdog client: %w", err)
	}
	l.client = client

	log.InfoObj("authdog client initialized", "client_config", map[string]any{
		"base_url":        client.BaseURL(),
		"api_key_set":     cfg.APIKey != "",
		"timeout_seconds": int(cfg.Timeout.Seconds()),
		"output_format":   cfg.OutputFormat,
	})
	return l, nil
}

// Run fetches user info for token (or the configured token when empty) and
// writes it to the output in the configured format.
func (l *Lookup) Run(ctx context.Context, token string) error {
	if l == nil || l.client == nil {
		return fmt.Errorf("lookup not initialized")
	}
	if strings.TrimSpace(token) == "" {
		token = l.cfg.AccessToken
	}
	if strings.TrimSpace(token) == "" {
		return ErrMissingToken
	}

	payload, err := l.client.GetUserInfo(ctx, token)
	l.logMetrics()
	if err != nil {
		switch {
		case authdog.IsAuthenticationError(err):
			l.log.WarnObj("access token rejected", "error", err.Error())
		default:
			l.log.ErrorObj("userinfo lookup failed", "error", err.Error())
		}
		return fmt.Errorf("get userinfo: %w", err)
	}

	l.log.InfoObj("userinfo fetched", "userinfo_meta", summarize(payload))

	if err := Render(l.out, l.cfg.OutputFormat, payload); err != nil {
		return fmt.Errorf("render userinfo: %w", err)
	}
	return nil
}

// Close releases the underlying client.
func (l *Lookup) Close() error {
	if l == nil || l.client == nil {
		return nil
	}
	return l.client.Close()
}

// Render writes payload to w as indented JSON or YAML.
func Render(w io.Writer, format string, payload authdog.Payload) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(map[string]any(payload)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// summarize picks identifying fields for logs without dumping the payload.
func summarize(payload authdog.Payload) map[string]any {
	meta := map[string]any{"keys": len(payload)}
	if user, ok := payload["user"].(map[string]any); ok {
		if id, ok := user["id"]; ok {
			meta["user_id"] = id
		}
	}
	return meta
}

func (l *Lookup) logMetrics() {
	if l.registry == nil {
		return
	}
	families, err := l.registry.Gather()
	if err != nil {
		l.log.WarnObj("gather metrics", "error", err.Error())
		return
	}
	samples := make(map[string]float64)
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				for _, lp := range m.GetLabel() {
					samples[mf.GetName()+"{"+lp.GetName()+"="+lp.GetValue()+"}"] = c.GetValue()
				}
			}
		}
	}
	l.log.DebugObj("request metrics", "metrics", samples)
}

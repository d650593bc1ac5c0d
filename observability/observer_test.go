package observability_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tailored-agentic-units/livedata/observability"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  string
	}{
		{name: "trace range", level: 1, want: "TRACE"},
		{name: "verbose maps to DEBUG", level: observability.LevelVerbose, want: "DEBUG"},
		{name: "info maps to INFO", level: observability.LevelInfo, want: "INFO"},
		{name: "warning maps to WARN", level: observability.LevelWarning, want: "WARN"},
		{name: "error maps to ERROR", level: observability.LevelError, want: "ERROR"},
		{name: "fatal range", level: 21, want: "FATAL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.String())
		})
	}
}

func TestLevel_SlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level observability.Level
		want  slog.Level
	}{
		{name: "verbose maps to Debug", level: observability.LevelVerbose, want: slog.LevelDebug},
		{name: "info maps to Info", level: observability.LevelInfo, want: slog.LevelInfo},
		{name: "warning maps to Warn", level: observability.LevelWarning, want: slog.LevelWarn},
		{name: "error maps to Error", level: observability.LevelError, want: slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.level.SlogLevel())
		})
	}
}

func TestNewEvent(t *testing.T) {
	event := observability.NewEvent("value.set", observability.LevelVerbose, "value/abc", nil)

	assert.Equal(t, observability.EventType("value.set"), event.Type)
	assert.Equal(t, "value/abc", event.Source)
	assert.NotNil(t, event.Data)
	assert.False(t, event.Timestamp.IsZero())
}

func TestMultiObserver(t *testing.T) {
	first := &captureObserver{}
	second := &captureObserver{}

	multi := observability.NewMultiObserver(nil, first, nil, second)
	multi.OnEvent(context.Background(), observability.NewEvent("value.set", observability.LevelInfo, "test", nil))

	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)
	assert.Equal(t, observability.EventType("value.set"), first.events[0].Type)
}

func TestMultiObserver_PanickingMember(t *testing.T) {
	after := &captureObserver{}

	multi := observability.NewMultiObserver(panicObserver{}, after)

	assert.NotPanics(t, func() {
		multi.OnEvent(context.Background(), observability.NewEvent("dispatch.panic", observability.LevelError, "test", nil))
	})
	assert.Len(t, after.events, 1)
}

func TestSlogObserver_LevelMapping(t *testing.T) {
	tests := []struct {
		name      string
		level     observability.Level
		minLevel  slog.Level
		expectLog bool
	}{
		{name: "verbose at debug handler", level: observability.LevelVerbose, minLevel: slog.LevelDebug, expectLog: true},
		{name: "verbose at info handler", level: observability.LevelVerbose, minLevel: slog.LevelInfo, expectLog: false},
		{name: "info at warn handler", level: observability.LevelInfo, minLevel: slog.LevelWarn, expectLog: false},
		{name: "error at error handler", level: observability.LevelError, minLevel: slog.LevelError, expectLog: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: tt.minLevel}))

			obs := observability.NewSlogObserver(logger)
			obs.OnEvent(context.Background(), observability.NewEvent("value.set", tt.level, "test", nil))

			assert.Equal(t, tt.expectLog, buf.Len() > 0, "buf: %q", buf.String())
		})
	}
}

func TestSlogObserver_SortedAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	obs := observability.NewSlogObserver(logger)
	obs.OnEvent(context.Background(), observability.NewEvent(
		"value.set",
		observability.LevelInfo,
		"value/1",
		map[string]any{"observers": 3, "debounced": 1},
	))

	output := buf.String()
	assert.Contains(t, output, "msg=value.set")
	assert.Contains(t, output, "source=value/1")
	assert.Less(t, strings.Index(output, "debounced=1"), strings.Index(output, "observers=3"))
}

func TestPrometheusObserver(t *testing.T) {
	reg := prometheus.NewRegistry()

	obs, err := observability.NewPrometheusObserver(reg)
	require.NoError(t, err)

	ctx := context.Background()
	obs.OnEvent(ctx, observability.NewEvent("value.set", observability.LevelVerbose, "a", nil))
	obs.OnEvent(ctx, observability.NewEvent("value.set", observability.LevelVerbose, "b", nil))
	obs.OnEvent(ctx, observability.NewEvent("dispatch.panic", observability.LevelError, "c", nil))

	assert.Equal(t, 2.0, testutil.ToFloat64(obs.Collector().WithLabelValues("value.set", "DEBUG")))
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.Collector().WithLabelValues("dispatch.panic", "ERROR")))

	_, err = observability.NewPrometheusObserver(reg)
	assert.Error(t, err, "registering twice on one registry should fail")
}

func TestRegistry_GetObserver(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "empty resolves to noop", key: "", wantErr: false},
		{name: "noop exists", key: "noop", wantErr: false},
		{name: "slog exists", key: "slog", wantErr: false},
		{name: "unknown fails", key: "nonexistent", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obs, err := observability.GetObserver(tt.key)
			if tt.wantErr {
				assert.True(t, errors.Is(err, observability.ErrUnknownObserver))
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, obs)
		})
	}
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	custom := &captureObserver{}
	observability.RegisterObserver("test-custom", custom)

	obs, err := observability.GetObserver("test-custom")
	require.NoError(t, err)

	obs.OnEvent(context.Background(), observability.NewEvent("validity.set", observability.LevelInfo, "test", nil))
	assert.Len(t, custom.events, 1)
}

type captureObserver struct {
	events []observability.Event
}

func (c *captureObserver) OnEvent(ctx context.Context, event observability.Event) {
	c.events = append(c.events, event)
}

type panicObserver struct{}

func (panicObserver) OnEvent(ctx context.Context, event observability.Event) {
	panic("observer failure")
}

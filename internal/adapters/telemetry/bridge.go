package telemetry

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/assemble/internal/core/ports"
)

var _ sdktrace.SpanProcessor = (*LogBridge)(nil)

// LogBridge is a span processor that reports every finished span as one log line.
type LogBridge struct {
	logger ports.Logger
}

// NewLogBridge returns a LogBridge writing to logger.
func NewLogBridge(logger ports.Logger) *LogBridge {
	return &LogBridge{logger: logger}
}

// OnStart does nothing.
func (b *LogBridge) OnStart(context.Context, sdktrace.ReadWriteSpan) {}

// OnEnd logs the span name, duration and attributes.
func (b *LogBridge) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	line := fmt.Sprintf("span %s %s", s.Name(), s.EndTime().Sub(s.StartTime()).Round(time.Microsecond))
	if attrs := formatAttributes(s.Attributes()); attrs != "" {
		line += " " + attrs
	}

	if s.Status().Code == codes.Error {
		b.logger.Warn(line + " status=error")
		return
	}
	b.logger.Info(line)
}

// Shutdown does nothing.
func (b *LogBridge) Shutdown(context.Context) error { return nil }

// ForceFlush does nothing.
func (b *LogBridge) ForceFlush(context.Context) error { return nil }

func formatAttributes(attrs []attribute.KeyValue) string {
	parts := make([]string, 0, len(attrs))
	for _, kv := range attrs {
		parts = append(parts, string(kv.Key)+"="+kv.Value.Emit())
	}
	slices.Sort(parts)
	return strings.Join(parts, " ")
}

// InstallLogProvider installs a global tracer provider whose spans are
// reported through logger. The returned function shuts the provider down.
func InstallLogProvider(logger ports.Logger) func(context.Context) error {
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewLogBridge(logger)),
	)
	otel.SetTracerProvider(tp)
	return tp.Shutdown
}

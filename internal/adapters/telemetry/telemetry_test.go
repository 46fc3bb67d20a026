package telemetry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.trai.ch/assemble/internal/adapters/telemetry"
	"go.trai.ch/assemble/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newRecordingTracer(t *testing.T) (*telemetry.OTelTracer, *tracetest.SpanRecorder) {
	t.Helper()
	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })
	return telemetry.NewOTelTracerWithProvider(tp, "test"), sr
}

func TestOTelTracer_SpanAttributes(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	ctx, span := tracer.Start(context.Background(), "evaluate")
	span.SetAttribute("mode", "production")
	span.SetAttribute("rules", 5)
	span.SetAttribute("minimize", true)
	span.SetAttribute("plugins", []string{"clean", "html"})
	span.SetAttribute("ratio", 0.5)
	tracer.EmitPlan(ctx, "production", "0123456789abcdef")
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "evaluate", spans[0].Name())

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}
	assert.Equal(t, "production", attrs["mode"].AsString())
	assert.Equal(t, int64(5), attrs["rules"].AsInt64())
	assert.True(t, attrs["minimize"].AsBool())
	assert.Equal(t, []string{"clean", "html"}, attrs["plugins"].AsStringSlice())
	assert.Equal(t, "0.5", attrs["ratio"].AsString())

	events := spans[0].Events()
	require.Len(t, events, 1)
	assert.Equal(t, "plan_evaluated", events[0].Name)
}

func TestOTelTracer_RecordError(t *testing.T) {
	tracer, sr := newRecordingTracer(t)

	_, span := tracer.Start(context.Background(), "evaluate")
	span.RecordError(errors.New("invalid build mode"))
	span.End()

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "invalid build mode", spans[0].Status().Description)
}

func TestOTelTracer_EmitPlanWithoutSpan(t *testing.T) {
	tracer, sr := newRecordingTracer(t)
	tracer.EmitPlan(context.Background(), "development", "x")
	assert.Empty(t, sr.Ended())
}

func TestLogBridge_OnEnd(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)

	var lines []string
	mockLogger.EXPECT().Info(gomock.Any()).Do(func(msg string) { lines = append(lines, msg) })
	mockLogger.EXPECT().Warn(gomock.Any()).Do(func(msg string) { lines = append(lines, msg) })

	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(telemetry.NewLogBridge(mockLogger)))
	defer func() { _ = tp.Shutdown(context.Background()) }()
	tracer := telemetry.NewOTelTracerWithProvider(tp, "test")

	_, ok := tracer.Start(context.Background(), "evaluate")
	ok.SetAttribute("mode", "production")
	ok.SetAttribute("fingerprint", "abc")
	ok.End()

	_, failed := tracer.Start(context.Background(), "evaluate")
	failed.RecordError(errors.New("boom"))
	failed.End()

	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "span evaluate "))
	assert.True(t, strings.HasSuffix(lines[0], "fingerprint=abc mode=production"))
	assert.True(t, strings.HasSuffix(lines[1], "status=error"))
}

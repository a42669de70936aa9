package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_ContextAddsTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	spanID, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "match generated", "match_id", "m-1")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["match_id"] != "m-1" {
		t.Fatalf("unexpected match_id: %v", fields["match_id"])
	}
	if fields["trace_id"] != traceID.String() {
		t.Fatalf("unexpected trace_id: %v", fields["trace_id"])
	}
	if fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected span_id: %v", fields["span_id"])
	}
}

func TestLogger_WithoutSpanOmitsTraceFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	logger.WarnContext(context.Background(), "slow request", "duration_ms", 1200)

	fields := logs.All()[0].ContextMap()
	if _, ok := fields["trace_id"]; ok {
		t.Fatalf("did not expect trace_id without a span")
	}
}

func TestLogger_OddArgsAndErrors(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core)).With("component", "test")

	logger.Error("bind failed", "error", errors.New("address in use"), 42, "value", "dangling")

	fields := logs.All()[0].ContextMap()
	if fields["component"] != "test" {
		t.Fatalf("expected With fields to carry over, got %v", fields)
	}
	if fields["error"] != "address in use" {
		t.Fatalf("unexpected error field: %v", fields["error"])
	}
	if fields["arg"] != "value" {
		t.Fatalf("expected non-string key to be renamed to arg, got %v", fields)
	}
	if v, ok := fields["dangling"]; !ok || v != nil {
		t.Fatalf("expected dangling key with nil value, got %v", fields)
	}
}

func TestNew_WritesJSONWithServiceFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: LevelInfo, Service: "stats-aggregator", Version: "1.0.0", Output: &buf})

	logger.Debug("hidden")
	logger.Info("http server starting", "addr", ":8080")
	_ = logger.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected debug to be filtered, got %d lines: %q", len(lines), buf.String())
	}

	var entry map[string]any
	if err := sonic.UnmarshalString(lines[0], &entry); err != nil {
		t.Fatalf("unmarshal log line: %v", err)
	}
	if entry["service"] != "stats-aggregator" || entry["version"] != "1.0.0" {
		t.Fatalf("missing service fields: %v", entry)
	}
	if entry["level"] != "info" || entry["msg"] != "http server starting" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	if caller, _ := entry["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("expected caller to point at the test, got %q", caller)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		" WARN ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"info":    LevelInfo,
		"bogus":   LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%s want=%s", in, got, want)
		}
	}
}

func TestDefault_NilIsSafe(t *testing.T) {
	SetDefault(nil)
	Default().Info("no-op")

	var nilLogger *Logger
	nilLogger.Info("falls back to default")
	if err := nilLogger.Sync(); err != nil {
		t.Fatalf("sync on nil logger: %v", err)
	}
}

package llm

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTraceMiddlewareLogsRequestAndResponse(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	mock := newMockAdapter("test-provider", "traced")
	client := NewClient(
		WithProvider("test-provider", mock),
		WithMiddleware(TraceMiddleware(logger, "mentat-dev")),
	)

	_, err := client.Complete(context.Background(), Request{
		Model:    "test-model",
		Messages: []Message{UserMessage("Hi")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Message != "llm request" {
		t.Errorf("first entry: %q", entries[0].Message)
	}
	if entries[1].Message != "llm response" {
		t.Errorf("second entry: %q", entries[1].Message)
	}
	fields := entries[0].ContextMap()
	if fields["project"] != "mentat-dev" {
		t.Errorf("expected project field, got %v", fields["project"])
	}
}

func TestTraceMiddlewareLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := zap.New(core)

	failing := &mockAdapter{
		name: "test-provider",
		err: &ServerError{ProviderError: ProviderError{
			SDKError: SDKError{Message: "boom"}, Provider: "test-provider", StatusCode: 500, Retryable: true,
		}},
	}
	client := NewClient(
		WithProvider("test-provider", failing),
		WithMiddleware(TraceMiddleware(logger, "mentat-dev")),
	)

	_, err := client.Complete(context.Background(), Request{
		Model:    "test-model",
		Messages: []Message{UserMessage("Hi")},
	})
	if err == nil {
		t.Fatal("expected error")
	}

	warns := logs.FilterMessage("llm request failed").All()
	if len(warns) != 1 {
		t.Fatalf("expected 1 failure entry, got %d", len(warns))
	}
	if warns[0].ContextMap()["retryable"] != true {
		t.Error("expected retryable=true on failure entry")
	}
}

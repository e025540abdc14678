package logging

import (
	"context"
	"testing"

	"github.com/goliatone/go-metadoc/pkg/interfaces"
)

func TestComponentLoggerFallsBackToNoOp(t *testing.T) {
	logger := ComponentLogger(nil, ParserComponent)
	if _, ok := logger.(noopLogger); !ok {
		t.Fatalf("expected noopLogger fallback, got %T", logger)
	}
}

func TestComponentLoggerTagsComponent(t *testing.T) {
	stub := &recordingLogger{}
	provider := providerFunc(func(name string) interfaces.Logger {
		stub.names = append(stub.names, name)
		return stub
	})

	logger := ComponentLogger(provider, ResolverComponent)
	logger.Debug("resolve")

	if len(stub.names) != 1 || stub.names[0] != ResolverComponent {
		t.Fatalf("expected provider lookup for %q, got %v", ResolverComponent, stub.names)
	}
	if got := stub.fields["component"]; got != ResolverComponent {
		t.Fatalf("expected component field %q, got %v", ResolverComponent, got)
	}
	if len(stub.messages) != 1 || stub.messages[0] != "resolve" {
		t.Fatalf("unexpected messages %v", stub.messages)
	}
}

func TestWithFieldsCopiesInput(t *testing.T) {
	stub := &recordingLogger{}
	fields := map[string]any{"object": "Account"}
	WithFields(stub, fields)
	fields["object"] = "Contact"

	if stub.fields["object"] != "Account" {
		t.Fatalf("expected fields to be copied, got %v", stub.fields["object"])
	}
}

func TestOrNoOp(t *testing.T) {
	if _, ok := OrNoOp(nil).(noopLogger); !ok {
		t.Fatal("expected nil logger to resolve to noop")
	}
	stub := &recordingLogger{}
	if OrNoOp(stub) != stub {
		t.Fatal("expected non-nil logger to pass through")
	}
}

type providerFunc func(name string) interfaces.Logger

func (f providerFunc) GetLogger(name string) interfaces.Logger { return f(name) }

type recordingLogger struct {
	names    []string
	messages []string
	fields   map[string]any
}

func (l *recordingLogger) Trace(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Debug(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.messages = append(l.messages, msg) }
func (l *recordingLogger) Fatal(msg string, _ ...any) { l.messages = append(l.messages, msg) }

func (l *recordingLogger) WithContext(context.Context) interfaces.Logger { return l }

func (l *recordingLogger) WithFields(fields map[string]any) interfaces.Logger {
	l.fields = fields
	return l
}

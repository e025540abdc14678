package logging

import (
	"context"
	"maps"

	"github.com/goliatone/go-metadoc/pkg/interfaces"
)

// Component names used to scope loggers obtained from a provider.
const (
	ResolverComponent     = "metadoc.resolver"
	ParserComponent       = "metadoc.parser"
	OrchestratorComponent = "metadoc.orchestrator"
	CLIComponent          = "metadoc.cli"
)

// ComponentLogger resolves a named logger from provider and tags every entry
// with the component name. A nil provider yields the no-op logger.
func ComponentLogger(provider interfaces.LoggerProvider, component string) interfaces.Logger {
	logger := NoOp()
	if provider != nil {
		if provided := provider.GetLogger(component); provided != nil {
			logger = provided
		}
	}
	return WithFields(logger, map[string]any{"component": component})
}

// WithFields attaches structured fields when the implementation supports the
// optional FieldsLogger extension.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}
	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}
	return logger
}

// OrNoOp returns logger, or the no-op logger when logger is nil.
func OrNoOp(logger interfaces.Logger) interfaces.Logger {
	if logger == nil {
		return NoOp()
	}
	return logger
}

// NoOp returns a logger that drops every entry.
func NoOp() interfaces.Logger {
	return noopLogger{}
}

type noopLogger struct{}

var _ interfaces.Logger = noopLogger{}

func (noopLogger) Trace(string, ...any) {}
func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}
func (noopLogger) Fatal(string, ...any) {}

func (n noopLogger) WithFields(map[string]any) interfaces.Logger {
	return n
}

func (n noopLogger) WithContext(context.Context) interfaces.Logger {
	return n
}

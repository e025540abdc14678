// Package orchestrator wires the resolver → parser → renderer pipeline that
// turns descriptor trees into one document per object, with dependency
// injection friendly helpers for consumers that prefer a single entry point.
package orchestrator

// Package metadata exposes the public contracts for the resolver and parser
// stages: descriptor kinds, the records extracted from descriptor files and
// the documentation set assembled per object. Implementations live under
// internal/metadata so the XML decoding details stay hidden from consumers.
package metadata

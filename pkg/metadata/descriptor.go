package metadata

import (
	"errors"
	"fmt"
	"strings"
)

// Namespace is the XML namespace every descriptor element is read from.
const Namespace = "http://soap.sforce.com/2006/04/metadata"

// ObjectsDir names the directory under the base path that holds one
// subdirectory per object.
const ObjectsDir = "objects"

// Kind enumerates the descriptor flavours understood by the parser.
type Kind string

const (
	KindField          Kind = "field"
	KindValidationRule Kind = "validationRule"
)

// Kinds lists the supported kinds in the order they are documented.
func Kinds() []Kind {
	return []Kind{KindField, KindValidationRule}
}

// Suffix returns the file name suffix identifying descriptors of this kind.
func (k Kind) Suffix() string {
	switch k {
	case KindField:
		return ".field-meta.xml"
	case KindValidationRule:
		return ".validationRule-meta.xml"
	default:
		return ""
	}
}

// Directory returns the per-object directory holding descriptors of this kind.
func (k Kind) Directory() string {
	switch k {
	case KindField:
		return "fields"
	case KindValidationRule:
		return "validationRules"
	default:
		return ""
	}
}

// Valid reports whether k is one of the supported kinds.
func (k Kind) Valid() bool {
	return k.Suffix() != ""
}

// Descriptor identifies one candidate descriptor file. Path is slash separated
// and relative to the resolver root.
type Descriptor struct {
	Object string `json:"object"`
	Kind   Kind   `json:"kind"`
	Path   string `json:"path"`
}

// NewDescriptor validates the inputs and builds a Descriptor.
func NewDescriptor(object string, kind Kind, path string) (Descriptor, error) {
	if strings.TrimSpace(object) == "" {
		return Descriptor{}, errors.New("metadata: descriptor object is required")
	}
	if !kind.Valid() {
		return Descriptor{}, fmt.Errorf("metadata: unsupported descriptor kind %q", kind)
	}
	if path == "" {
		return Descriptor{}, errors.New("metadata: descriptor path is required")
	}
	return Descriptor{Object: object, Kind: kind, Path: path}, nil
}

// Name returns the descriptor file name without its kind suffix.
func (d Descriptor) Name() string {
	base := d.Path
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	return strings.TrimSuffix(base, d.Kind.Suffix())
}

// Resolution holds the candidate descriptors found for one object.
type Resolution struct {
	Object string
	Fields []Descriptor
	Rules  []Descriptor
}

// Empty reports whether no candidates were found.
func (r Resolution) Empty() bool {
	return len(r.Fields) == 0 && len(r.Rules) == 0
}

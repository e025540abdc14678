package metadata_test

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"

	"github.com/goliatone/go-metadoc/pkg/metadata"
)

func TestKind(t *testing.T) {
	cases := []struct {
		kind      metadata.Kind
		suffix    string
		directory string
		valid     bool
	}{
		{kind: metadata.KindField, suffix: ".field-meta.xml", directory: "fields", valid: true},
		{kind: metadata.KindValidationRule, suffix: ".validationRule-meta.xml", directory: "validationRules", valid: true},
		{kind: metadata.Kind("layout")},
	}

	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			if got := tc.kind.Suffix(); got != tc.suffix {
				t.Errorf("Suffix() = %q, want %q", got, tc.suffix)
			}
			if got := tc.kind.Directory(); got != tc.directory {
				t.Errorf("Directory() = %q, want %q", got, tc.directory)
			}
			if got := tc.kind.Valid(); got != tc.valid {
				t.Errorf("Valid() = %v, want %v", got, tc.valid)
			}
		})
	}
}

func TestNewDescriptor(t *testing.T) {
	descriptor, err := metadata.NewDescriptor("Account", metadata.KindValidationRule,
		"objects/Account/validationRules/dot_in_website.validationRule-meta.xml")
	if err != nil {
		t.Fatalf("new descriptor: %v", err)
	}
	if got := descriptor.Name(); got != "dot_in_website" {
		t.Fatalf("Name() = %q, want %q", got, "dot_in_website")
	}

	if _, err := metadata.NewDescriptor("", metadata.KindField, "x.field-meta.xml"); err == nil {
		t.Fatalf("expected error for missing object")
	}
	if _, err := metadata.NewDescriptor("Account", metadata.Kind("layout"), "x"); err == nil {
		t.Fatalf("expected error for unsupported kind")
	}
	if _, err := metadata.NewDescriptor("Account", metadata.KindField, ""); err == nil {
		t.Fatalf("expected error for missing path")
	}
}

func TestDocumentationSet(t *testing.T) {
	empty := metadata.DocumentationSet{Object: "Lead"}
	if !empty.Empty() || empty.HasRules() {
		t.Fatalf("expected empty set without rules")
	}

	set := metadata.DocumentationSet{
		Object: "Account",
		Fields: []metadata.FieldRecord{{Label: "Name", APIName: "Name", Type: "Text"}},
		Rules:  []metadata.ValidationRuleRecord{{Name: "r", Description: "d", Formula: "f"}},
	}
	cloned := set.Clone()
	cloned.Fields[0].Label = "changed"
	cloned.Rules[0].Name = "changed"

	if set.Fields[0].Label != "Name" || set.Rules[0].Name != "r" {
		t.Fatalf("clone shares backing arrays with the original")
	}
	if set.Empty() || !set.HasRules() {
		t.Fatalf("expected populated set with rules")
	}
}

func TestErrors(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := &metadata.InvalidDescriptorError{Path: "objects/Account/fields/A.field-meta.xml", Err: cause}

	if !metadata.IsInvalidDescriptor(err) {
		t.Fatalf("expected IsInvalidDescriptor to match")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected Unwrap to expose the cause")
	}
	if got := err.Error(); got != "metadata: invalid descriptor objects/Account/fields/A.field-meta.xml: unexpected EOF" {
		t.Fatalf("unexpected message %q", got)
	}

	wrapped := metadata.WrapInvalidDescriptor(err)
	if !goerrors.IsCategory(wrapped, goerrors.CategoryValidation) {
		t.Fatalf("expected validation category, got %v", wrapped)
	}
	if metadata.WrapInvalidDescriptor(wrapped) != wrapped {
		t.Fatalf("expected already wrapped errors to pass through")
	}
	if metadata.WrapInvalidDescriptor(nil) != nil {
		t.Fatalf("expected nil to stay nil")
	}

	if !goerrors.IsCategory(metadata.WrapInvalidObject("../x"), goerrors.CategoryValidation) {
		t.Fatalf("expected invalid object to be a validation error")
	}
	if got := (metadata.NoDocumentationError{Object: "Lead"}).Error(); got != "metadata: no documentation found for Lead" {
		t.Fatalf("unexpected advisory %q", got)
	}
}

package testsupport

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-metadoc/pkg/metadata"
)

const xmlHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n"

// Field describes a field descriptor fixture. Empty attributes are omitted
// from the generated XML.
type Field struct {
	File     string
	FullName string
	Label    string
	Type     string
}

// Rule describes a validation rule descriptor fixture. Active is written
// verbatim; leave it empty to omit the element.
type Rule struct {
	File         string
	FullName     string
	Active       string
	ErrorMessage string
	Formula      string
}

// Object groups the descriptors written for one object directory.
type Object struct {
	Name   string
	Fields []Field
	Rules  []Rule
	// Raw maps file names (relative to the object directory) to verbatim
	// contents, for malformed or unusual fixtures.
	Raw map[string]string
}

// FieldXML renders a field descriptor document.
func FieldXML(f Field) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, "<CustomField xmlns=%q>\n", metadata.Namespace)
	writeElement(&b, "fullName", f.FullName)
	writeElement(&b, "label", f.Label)
	writeElement(&b, "type", f.Type)
	b.WriteString("</CustomField>\n")
	return b.String()
}

// RuleXML renders a validation rule descriptor document.
func RuleXML(r Rule) string {
	var b strings.Builder
	b.WriteString(xmlHeader)
	fmt.Fprintf(&b, "<ValidationRule xmlns=%q>\n", metadata.Namespace)
	writeElement(&b, "fullName", r.FullName)
	writeElement(&b, "active", r.Active)
	writeElement(&b, "errorConditionFormula", r.Formula)
	writeElement(&b, "errorMessage", r.ErrorMessage)
	b.WriteString("</ValidationRule>\n")
	return b.String()
}

func writeElement(b *strings.Builder, name, value string) {
	if value == "" {
		return
	}
	var escaped bytes.Buffer
	_ = xml.EscapeText(&escaped, []byte(value))
	fmt.Fprintf(b, "    <%s>%s</%s>\n", name, escaped.String(), name)
}

// WriteObjects lays out objects under base/objects and returns base. Pass an
// empty base to use a fresh temporary directory.
func WriteObjects(t *testing.T, base string, objects ...Object) string {
	t.Helper()

	if base == "" {
		base = t.TempDir()
	}
	for _, object := range objects {
		root := filepath.Join(base, metadata.ObjectsDir, object.Name)
		mustMkdir(t, root)

		for _, field := range object.Fields {
			name := field.File
			if name == "" {
				name = field.FullName + metadata.KindField.Suffix()
			}
			mustWrite(t, filepath.Join(root, metadata.KindField.Directory(), name), FieldXML(field))
		}
		for _, rule := range object.Rules {
			name := rule.File
			if name == "" {
				name = rule.FullName + metadata.KindValidationRule.Suffix()
			}
			mustWrite(t, filepath.Join(root, metadata.KindValidationRule.Directory(), name), RuleXML(rule))
		}
		for name, content := range object.Raw {
			mustWrite(t, filepath.Join(root, filepath.FromSlash(name)), content)
		}
	}
	return base
}

// SampleAccount mirrors the canonical fixture used across packages: two
// fields, one active and one inactive validation rule.
func SampleAccount() Object {
	return Object{
		Name: "Account",
		Fields: []Field{
			{FullName: "AccountNumber", Label: "Account Number", Type: "Text"},
			{FullName: "Industry", Label: "Industry", Type: "Picklist"},
		},
		Rules: []Rule{
			{
				FullName:     "dot_in_website",
				Active:       "true",
				ErrorMessage: "Website must contain a dot.",
				Formula:      `NOT(CONTAINS(Website, "."))`,
			},
			{
				FullName:     "Billing_Address_Required",
				Active:       "false",
				ErrorMessage: "Billing address is required.",
				Formula:      "ISBLANK(BillingStreet)",
			},
		},
	}
}

// SampleContact is a fields-only object.
func SampleContact() Object {
	return Object{
		Name: "Contact",
		Fields: []Field{
			{FullName: "Email", Label: "Email", Type: "Email"},
		},
	}
}

// ReadFile returns the content of path, failing the test when it is missing.
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}

// CaptureTemplateOutput executes a render function that writes to an
// io.Writer, returning both the string result and the writer contents.
func CaptureTemplateOutput(t *testing.T, render func(io.Writer) (string, error)) (string, string) {
	t.Helper()

	var buf bytes.Buffer
	out, err := render(&buf)
	if err != nil {
		t.Fatalf("render template: %v", err)
	}

	return out, buf.String()
}

func mustMkdir(t *testing.T, dir string) {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
}

func mustWrite(t *testing.T, path, content string) {
	t.Helper()
	mustMkdir(t, filepath.Dir(path))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

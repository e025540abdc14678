package render_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-metadoc/pkg/metadata"
	"github.com/goliatone/go-metadoc/pkg/render"
)

type stubRenderer struct {
	name string
	ext  string
}

func (s stubRenderer) Name() string      { return s.name }
func (s stubRenderer) Extension() string { return s.ext }
func (s stubRenderer) Render(context.Context, metadata.DocumentationSet) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(stubRenderer{name: "markdown", ext: ".md"})
	registry.MustRegister(stubRenderer{name: "html", ext: ".html"})

	if !registry.Has("markdown") {
		t.Fatal("expected markdown renderer to be registered")
	}
	renderer, err := registry.Get("html")
	if err != nil {
		t.Fatalf("get html: %v", err)
	}
	if renderer.Name() != "html" {
		t.Fatalf("unexpected renderer %q", renderer.Name())
	}
	if diff := cmp.Diff([]string{"html", "markdown"}, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistryRejectsInvalidRegistrations(t *testing.T) {
	registry := render.NewRegistry()
	if err := registry.Register(nil); err == nil {
		t.Fatal("expected error for nil renderer")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatal("expected error for unnamed renderer")
	}
	registry.MustRegister(stubRenderer{name: "markdown"})
	if err := registry.Register(stubRenderer{name: "markdown"}); err == nil {
		t.Fatal("expected duplicate registration error")
	}
	if _, err := registry.Get("pdf"); err == nil {
		t.Fatal("expected missing renderer error")
	}
}

func TestFileName(t *testing.T) {
	if got := render.FileName(stubRenderer{name: "html", ext: ".html"}, "Account"); got != "Account.html" {
		t.Fatalf("FileName = %q, want Account.html", got)
	}
	if got := render.FileName(stubRenderer{name: "bare"}, "Account"); got != "Account.md" {
		t.Fatalf("FileName = %q, want Account.md", got)
	}
}

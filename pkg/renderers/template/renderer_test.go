package template_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-metadoc/pkg/metadata"
	"github.com/goliatone/go-metadoc/pkg/render"
	"github.com/goliatone/go-metadoc/pkg/renderers/markdown"
	tplrenderer "github.com/goliatone/go-metadoc/pkg/renderers/template"
	"github.com/goliatone/go-metadoc/pkg/testsupport"
)

func sampleSet() metadata.DocumentationSet {
	return metadata.DocumentationSet{
		Object: "Account",
		Fields: []metadata.FieldRecord{
			{Label: "Account Number", APIName: "AccountNumber", Type: "Text"},
			{Label: "Industry", APIName: "Industry", Type: "Picklist"},
		},
		Rules: []metadata.ValidationRuleRecord{
			{Name: "dot_in_website", Description: "a | b", Formula: "LEN(Website)\n> 3"},
		},
	}
}

func TestRenderer_EmbeddedTemplate(t *testing.T) {
	renderer, err := tplrenderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(context.Background(), sampleSet())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	text := string(output)

	for _, want := range []string{
		"# Account Documentation\n",
		"| Label | API Name | Type |\n",
		"| Account Number | AccountNumber | Text |\n",
		"| Industry | Industry | Picklist |\n",
		"## Validation Rules\n",
		`| dot_in_website | a \| b | LEN(Website)<br>> 3 |`,
	} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in output:\n%s", want, text)
		}
	}
	if strings.Contains(text, "&gt;") {
		t.Fatalf("expected template output to be unescaped, got:\n%s", text)
	}
}

func TestRenderer_MatchesMarkdownRenderer(t *testing.T) {
	renderer, err := tplrenderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	got, err := renderer.Render(context.Background(), sampleSet())
	if err != nil {
		t.Fatalf("template render: %v", err)
	}
	want, err := markdown.New().Render(context.Background(), sampleSet())
	if err != nil {
		t.Fatalf("markdown render: %v", err)
	}

	if diff := testsupport.CompareGolden(string(want), string(got)); diff != "" {
		t.Fatalf("template output diverges from markdown renderer (-want +got):\n%s", diff)
	}
}

func TestRenderer_OmitsRulesWithoutRules(t *testing.T) {
	renderer, err := tplrenderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	set := sampleSet()
	set.Rules = nil
	output, err := renderer.Render(context.Background(), set)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if strings.Contains(string(output), "Validation Rules") {
		t.Fatalf("expected no rules section, got:\n%s", output)
	}
}

func TestRenderer_TemplatesDirOverridesEmbedded(t *testing.T) {
	renderer, err := tplrenderer.New(tplrenderer.WithTemplatesDir("testdata/custom"), tplrenderer.WithExtension("txt"))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	output, err := renderer.Render(context.Background(), sampleSet())
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := "Account: 2 fields, 1 rules\n- AccountNumber\n- Industry\n"
	if diff := testsupport.CompareGolden(want, string(output)); diff != "" {
		t.Fatalf("custom template mismatch (-want +got):\n%s", diff)
	}
	if got := render.FileName(renderer, "Account"); got != "Account.txt" {
		t.Fatalf("unexpected file name %q", got)
	}
}

func TestRenderer_TemplatesFSAndSanitizer(t *testing.T) {
	files := fstest.MapFS{
		"templates/documentation.md.tpl": {Data: []byte(`{% autoescape off %}{% for field in fields %}{{ field.label }};{% endfor %}{% endautoescape %}`)},
	}
	renderer, err := tplrenderer.New(
		tplrenderer.WithTemplatesFS(files),
		tplrenderer.WithSanitizer(render.StripMarkup),
	)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	set := metadata.DocumentationSet{
		Object: "Account",
		Fields: []metadata.FieldRecord{{Label: "<i>Name</i>"}, {Label: "Owner"}, {Label: "<br/>"}},
	}
	output, err := renderer.Render(context.Background(), set)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := string(output); got != "Name;Owner;N/A;" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRenderer_RequiresObject(t *testing.T) {
	renderer, err := tplrenderer.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(context.Background(), metadata.DocumentationSet{}); err == nil {
		t.Fatalf("expected error for missing object name")
	}
}

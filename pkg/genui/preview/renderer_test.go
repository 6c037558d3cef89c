package preview

import (
	"strings"
	"testing"
	"time"

	"genui-be/internal/entity"
)

func TestExtractComponentName(t *testing.T) {
	tests := []struct {
		name string
		jsx  string
		want string
	}{
		{
			name: "function declaration",
			jsx:  "function PricingCard(props) { return <div>{props.children}</div>; }",
			want: "PricingCard",
		},
		{
			name: "arrow with parens",
			jsx:  "const AlertBanner = (props) => <div>{props.children}</div>;",
			want: "AlertBanner",
		},
		{
			name: "arrow with bare param",
			jsx:  "const Badge = props => <span>{props.children}</span>;",
			want: "Badge",
		},
		{
			name: "arrow with no params",
			jsx:  "const Spinner = () => <div className=\"spin\" />;",
			want: "Spinner",
		},
		{
			name: "lowercase function ignored",
			jsx:  "function helper() {} ",
			want: "GeneratedComponent",
		},
		{
			name: "no declaration at all",
			jsx:  "<div>hello</div>",
			want: "GeneratedComponent",
		},
		{
			name: "function wins over later arrow",
			jsx:  "function Modal() {}\nconst Overlay = () => null;",
			want: "Modal",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractComponentName(tt.jsx); got != tt.want {
				t.Errorf("ExtractComponentName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDefaultChildren(t *testing.T) {
	tests := []struct {
		componentName string
		want          string
	}{
		{componentName: "SubmitButton", want: "Click Me"},
		{componentName: "PricingCard", want: "<div style={{ padding: '20px' }}>Card Content</div>"},
		{componentName: "NavBar", want: "Preview Content"},
	}

	for _, tt := range tests {
		t.Run(tt.componentName, func(t *testing.T) {
			if got := DefaultChildren(tt.componentName); got != tt.want {
				t.Errorf("DefaultChildren(%q) = %q, want %q", tt.componentName, got, tt.want)
			}
		})
	}
}

func TestBuildDocument(t *testing.T) {
	artifact := &entity.Artifact{
		Jsx: "function GreetingCard(props) { return <div className=\"card\">{props.children}</div>; }",
		Css: ".card { border: 1px solid #ddd; }",
	}

	doc := BuildDocument(artifact)

	wantFragments := []string{
		artifact.Jsx,
		artifact.Css,
		"babel.min.js",
		"react-dom@18",
		"<GreetingCard>",
		"</GreetingCard>",
		"Card Content",
		"window.addEventListener('error'",
		"PreviewWrapper",
	}
	for _, want := range wantFragments {
		if !strings.Contains(doc, want) {
			t.Errorf("document missing fragment %q", want)
		}
	}
}

func TestBuildDocumentEmptyArtifact(t *testing.T) {
	tests := []struct {
		name     string
		artifact *entity.Artifact
	}{
		{name: "nil artifact", artifact: nil},
		{name: "empty jsx", artifact: &entity.Artifact{Css: ".x {}"}},
		{name: "whitespace jsx", artifact: &entity.Artifact{Jsx: "  \n "}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := BuildDocument(tt.artifact)
			if !strings.Contains(doc, "No component code to preview") {
				t.Errorf("expected empty-state document, got %q", doc)
			}
		})
	}
}

func TestBuildDocumentEscapesScriptTerminator(t *testing.T) {
	artifact := &entity.Artifact{
		Jsx: "function Sneaky() { return <div>{'</script><script>alert(1)'}</div>; }",
	}

	doc := BuildDocument(artifact)

	// The raw terminator must not survive inside the babel block.
	babelStart := strings.Index(doc, `<script type="text/babel">`)
	if babelStart < 0 {
		t.Fatal("babel script block not found")
	}
	babelBlock := doc[babelStart:]
	if idx := strings.Index(babelBlock, "</script><script>"); idx >= 0 {
		t.Error("unescaped script terminator leaked into preview document")
	}
}

func TestExportBundle(t *testing.T) {
	artifact := &entity.Artifact{
		Jsx: "function Chip() { return <span />; }",
		Css: ".chip { border-radius: 9999px; }",
	}
	at := time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC)

	filename, content := ExportBundle(artifact, at)

	if filename != "component-2025-06-15.txt" {
		t.Errorf("filename = %q", filename)
	}
	for _, want := range []string{"// Component.jsx", artifact.Jsx, "/* styles.css */", artifact.Css, "Generated by GenUI"} {
		if !strings.Contains(content, want) {
			t.Errorf("bundle missing %q", want)
		}
	}
}

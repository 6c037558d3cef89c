package prompt

import (
	"strings"
	"testing"

	"genui-be/internal/apperror"
)

func TestBuildEmbedsPromptVerbatim(t *testing.T) {
	b := NewBuilder()

	userPrompt := "a pricing card with a highlighted tier"
	full, err := b.Build(userPrompt)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if !strings.Contains(full, "Prompt: "+userPrompt) {
		t.Errorf("composed prompt does not embed user prompt verbatim")
	}

	wantLines := []string{
		"You are a React expert",
		"Use function declaration syntax",
		"Give the component a clear name",
		"Don't include any imports or exports",
		"Make sure the component can accept children",
		`"jsx"`,
		`"css"`,
	}
	for _, want := range wantLines {
		if !strings.Contains(full, want) {
			t.Errorf("composed prompt missing %q", want)
		}
	}
}

func TestBuildRejectsEmptyPrompt(t *testing.T) {
	tests := []struct {
		name   string
		prompt string
	}{
		{name: "empty", prompt: ""},
		{name: "spaces only", prompt: "   "},
		{name: "whitespace mix", prompt: " \t\n "},
	}

	b := NewBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := b.Build(tt.prompt)
			if err == nil {
				t.Fatal("expected error for empty prompt")
			}
			if !apperror.IsKind(err, apperror.KindValidation) {
				t.Errorf("expected validation error, got %v", err)
			}
		})
	}
}

func TestBuildKeepsSurroundingWhitespace(t *testing.T) {
	b := NewBuilder()

	full, err := b.Build("  a button  ")
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}
	if !strings.Contains(full, "Prompt:   a button  ") {
		t.Errorf("user prompt was altered before embedding")
	}
}

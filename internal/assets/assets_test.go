package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle_Embedded(t *testing.T) {
	t.Parallel()

	css, err := LoadStyle(DefaultStyle)
	if err != nil {
		t.Fatalf("LoadStyle(%q) error = %v", DefaultStyle, err)
	}
	for _, want := range []string{".question", ".option", "dark-mode", "list-mode", ".progress-bar"} {
		if !strings.Contains(css, want) {
			t.Errorf("LoadStyle(%q) missing %q", DefaultStyle, want)
		}
	}
}

func TestLoadTemplate_Embedded(t *testing.T) {
	t.Parallel()

	tmpl, err := LoadTemplate(DefaultTemplate)
	if err != nil {
		t.Fatalf("LoadTemplate(%q) error = %v", DefaultTemplate, err)
	}
	for _, want := range []string{"{{.Title}}", "{{.Questions}}", "{{.CSS}}", "{{.Runtime}}", "questions-container", "search-input"} {
		if !strings.Contains(tmpl, want) {
			t.Errorf("LoadTemplate(%q) missing %q", DefaultTemplate, want)
		}
	}
}

func TestLoadScript_Embedded(t *testing.T) {
	t.Parallel()

	js, err := LoadScript(DefaultScript)
	if err != nil {
		t.Fatalf("LoadScript(%q) error = %v", DefaultScript, err)
	}
	for _, want := range []string{"qbank_progress", "checkAnswer", "shuffleQuestions", "localStorage"} {
		if !strings.Contains(js, want) {
			t.Errorf("LoadScript(%q) missing %q", DefaultScript, want)
		}
	}
}

func TestEmbeddedLoader_NotFound(t *testing.T) {
	t.Parallel()

	loader := NewEmbeddedLoader()

	if _, err := loader.LoadStyle("nonexistent"); !errors.Is(err, ErrStyleNotFound) {
		t.Errorf("LoadStyle() error = %v, want ErrStyleNotFound", err)
	}
	if _, err := loader.LoadTemplate("nonexistent"); !errors.Is(err, ErrTemplateNotFound) {
		t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
	}
	if _, err := loader.LoadScript("nonexistent"); !errors.Is(err, ErrScriptNotFound) {
		t.Errorf("LoadScript() error = %v, want ErrScriptNotFound", err)
	}
}

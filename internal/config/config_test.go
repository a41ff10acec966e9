package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Output.Suffix != "_quiz" {
		t.Errorf("Output.Suffix = %q, want %q", cfg.Output.Suffix, "_quiz")
	}
	if cfg.Output.DefaultDir != "" {
		t.Errorf("Output.DefaultDir = %q, want empty", cfg.Output.DefaultDir)
	}
	if cfg.Document.Theme != ThemeLight {
		t.Errorf("Document.Theme = %q, want %q", cfg.Document.Theme, ThemeLight)
	}
	if cfg.Document.MathJaxURL == "" {
		t.Error("Document.MathJaxURL is empty")
	}
	if cfg.Highlight.Mode != HighlightModeCDN {
		t.Errorf("Highlight.Mode = %q, want %q", cfg.Highlight.Mode, HighlightModeCDN)
	}
	if len(cfg.Highlight.Languages) == 0 {
		t.Error("Highlight.Languages is empty")
	}
	if len(cfg.Quiz.MultiAnswerKeywords) == 0 {
		t.Error("Quiz.MultiAnswerKeywords is empty")
	}
	if cfg.Assets.BasePath != "" {
		t.Errorf("Assets.BasePath = %q, want empty", cfg.Assets.BasePath)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() error = %v", err)
	}
}

func TestValidateFieldLength(t *testing.T) {
	tests := []struct {
		name      string
		value     string
		maxLength int
		wantErr   bool
	}{
		{
			name:      "empty value is valid",
			value:     "",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value at limit is valid",
			value:     "1234567890",
			maxLength: 10,
			wantErr:   false,
		},
		{
			name:      "value over limit returns error",
			value:     "12345678901",
			maxLength: 10,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFieldLength("test.field", tt.value, tt.maxLength)
			if tt.wantErr {
				if !errors.Is(err, ErrFieldTooLong) {
					t.Errorf("error = %v, want ErrFieldTooLong", err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Run("valid config passes validation", func(t *testing.T) {
		cfg := &Config{
			Output:   OutputConfig{Suffix: "_quiz"},
			Document: DocumentConfig{Title: "期末复习", Theme: ThemeDark},
			Highlight: HighlightConfig{
				Mode:      HighlightModeInline,
				Style:     "monokai",
				Languages: []string{"go"},
			},
			Quiz: QuizConfig{MultiAnswerKeywords: []string{"多选"}},
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("unknown theme returns error", func(t *testing.T) {
		cfg := &Config{Document: DocumentConfig{Theme: "sepia"}}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("unknown highlight mode returns error", func(t *testing.T) {
		cfg := &Config{Highlight: HighlightConfig{Mode: "server"}}
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})

	t.Run("title too long returns error", func(t *testing.T) {
		cfg := &Config{Document: DocumentConfig{Title: strings.Repeat("x", MaxTitleLength+1)}}
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("keyword too long returns error", func(t *testing.T) {
		cfg := &Config{Quiz: QuizConfig{MultiAnswerKeywords: []string{strings.Repeat("x", MaxKeywordLength+1)}}}
		if err := cfg.Validate(); !errors.Is(err, ErrFieldTooLong) {
			t.Errorf("error = %v, want ErrFieldTooLong", err)
		}
	})

	t.Run("empty enums are valid", func(t *testing.T) {
		cfg := &Config{}
		if err := cfg.Validate(); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})
}

func TestLoadConfig(t *testing.T) {
	t.Run("empty name returns error", func(t *testing.T) {
		_, err := LoadConfig("")
		if !errors.Is(err, ErrEmptyConfigName) {
			t.Errorf("error = %v, want ErrEmptyConfigName", err)
		}
	})

	t.Run("missing path returns ErrConfigNotFound", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
		if !errors.Is(err, ErrConfigNotFound) {
			t.Errorf("error = %v, want ErrConfigNotFound", err)
		}
	})

	t.Run("loads valid file by path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf.yaml")
		content := `
output:
  suffix: "_practice"
document:
  title: "数据库题库"
  theme: "dark"
highlight:
  mode: "inline"
  style: "monokai"
quiz:
  multiAnswerKeywords: ["多选", "不定项"]
`
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadConfig(path)
		if err != nil {
			t.Fatalf("LoadConfig() error = %v", err)
		}
		if cfg.Output.Suffix != "_practice" {
			t.Errorf("Output.Suffix = %q, want %q", cfg.Output.Suffix, "_practice")
		}
		if cfg.Document.Title != "数据库题库" {
			t.Errorf("Document.Title = %q, want %q", cfg.Document.Title, "数据库题库")
		}
		if cfg.Highlight.Mode != HighlightModeInline {
			t.Errorf("Highlight.Mode = %q, want %q", cfg.Highlight.Mode, HighlightModeInline)
		}
		if len(cfg.Quiz.MultiAnswerKeywords) != 2 {
			t.Errorf("MultiAnswerKeywords = %v, want 2 entries", cfg.Quiz.MultiAnswerKeywords)
		}
	})

	t.Run("unknown field returns parse error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf.yaml")
		if err := os.WriteFile(path, []byte("nonsense: true\n"), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrConfigParse) {
			t.Errorf("error = %v, want ErrConfigParse", err)
		}
	})

	t.Run("invalid value fails validation", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "conf.yaml")
		if err := os.WriteFile(path, []byte("document:\n  theme: sepia\n"), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		_, err := LoadConfig(path)
		if !errors.Is(err, ErrInvalidValue) {
			t.Errorf("error = %v, want ErrInvalidValue", err)
		}
	})
}

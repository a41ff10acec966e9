package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-qbank2html/internal/yamlutil"
)

type sampleConfig struct {
	Title string   `yaml:"title"`
	Theme string   `yaml:"theme"`
	Langs []string `yaml:"langs"`
}

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML with known fields",
			data: []byte("title: 数据库题库\ntheme: dark\nlangs: [go, sql]"),
			dest: &sampleConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*sampleConfig)
				if cfg.Title != "数据库题库" {
					t.Errorf("Title = %q, want %q", cfg.Title, "数据库题库")
				}
				if cfg.Theme != "dark" {
					t.Errorf("Theme = %q, want %q", cfg.Theme, "dark")
				}
				if len(cfg.Langs) != 2 {
					t.Errorf("Langs = %v, want 2 entries", cfg.Langs)
				}
			},
		},
		{
			name:    "unknown field rejected",
			data:    []byte("title: x\ntheem: dark"),
			dest:    &sampleConfig{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "invalid syntax rejected",
			data:    []byte("title: [unclosed"),
			dest:    &sampleConfig{},
			wantErr: errors.New("yamlutil:"),
		},
		{
			name:    "nil data",
			data:    nil,
			dest:    &sampleConfig{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "empty data",
			data:    []byte{},
			dest:    &sampleConfig{},
			wantErr: yamlutil.ErrEmptyInput,
		},
		{
			name:    "nil target",
			data:    []byte("title: x"),
			dest:    nil,
			wantErr: yamlutil.ErrNilTarget,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.UnmarshalStrict(tt.data, tt.dest)
			if tt.wantErr != nil {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if errors.Is(err, tt.wantErr) {
					return
				}
				if !strings.Contains(err.Error(), tt.wantErr.Error()) {
					t.Fatalf("error = %q, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

func TestUnmarshalStrict_SizeLimit(t *testing.T) {
	t.Parallel()

	data := make([]byte, yamlutil.MaxInputSize+1)
	copy(data, []byte("title: x"))

	var cfg sampleConfig
	err := yamlutil.UnmarshalStrict(data, &cfg)
	if !errors.Is(err, yamlutil.ErrInputTooLarge) {
		t.Errorf("error = %v, want ErrInputTooLarge", err)
	}
	if err == nil || !strings.Contains(err.Error(), "max") {
		t.Errorf("error %v should name the limit", err)
	}
}

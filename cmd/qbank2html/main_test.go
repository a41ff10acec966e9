package main

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("version", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := run(ctx, []string{"qbank2html", "version"}, env); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "qbank2html") {
			t.Errorf("version output = %q", stdout.String())
		}
	})

	t.Run("help prints usage", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := run(ctx, []string{"qbank2html", "help"}, env); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		if !strings.Contains(stdout.String(), "Commands:") {
			t.Errorf("help output = %q", stdout.String())
		}
	})

	t.Run("help convert prints flags", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		if err := run(ctx, []string{"qbank2html", "help", "convert"}, env); err != nil {
			t.Fatalf("run() error = %v", err)
		}
		for _, want := range []string{"--theme", "--highlight", "--multi-keywords"} {
			if !strings.Contains(stdout.String(), want) {
				t.Errorf("convert help missing %q", want)
			}
		}
	})

	t.Run("unknown command", func(t *testing.T) {
		t.Parallel()

		env, _, stderr := testEnv()
		err := run(ctx, []string{"qbank2html", "covert"}, env)
		if !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("error = %v, want ErrUnknownCommand", err)
		}
		if !strings.Contains(stderr.String(), "Usage:") {
			t.Error("usage not printed for unknown command")
		}
	})

	t.Run("no command", func(t *testing.T) {
		t.Parallel()

		env, _, _ := testEnv()
		if err := run(ctx, []string{"qbank2html"}, env); !errors.Is(err, ErrUnknownCommand) {
			t.Errorf("error = %v, want ErrUnknownCommand", err)
		}
	})
}

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseConvertFlags([]string{
		"--theme", "dark",
		"--highlight", "inline",
		"--highlight-langs", "go,rust",
		"--multi-keywords", "多选,不定项",
		"-o", "out",
		"bank.md",
	})
	if err != nil {
		t.Fatalf("parseConvertFlags() error = %v", err)
	}

	if flags.document.theme != "dark" {
		t.Errorf("theme = %q, want dark", flags.document.theme)
	}
	if flags.highlight.mode != "inline" {
		t.Errorf("highlight mode = %q, want inline", flags.highlight.mode)
	}
	if len(flags.highlight.languages) != 2 || flags.highlight.languages[0] != "go" {
		t.Errorf("languages = %v, want [go rust]", flags.highlight.languages)
	}
	if len(flags.multiKeys) != 2 {
		t.Errorf("multiKeys = %v, want 2 entries", flags.multiKeys)
	}
	if flags.output != "out" {
		t.Errorf("output = %q, want out", flags.output)
	}
	if len(positional) != 1 || positional[0] != "bank.md" {
		t.Errorf("positional = %v, want [bank.md]", positional)
	}
}

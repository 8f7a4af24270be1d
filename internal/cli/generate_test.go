package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestUnescapeNewlines(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "no escapes", in: "plain text", want: "plain text"},
		{name: "single newline", in: `一行目\n二行目`, want: "一行目\n二行目"},
		{name: "multiple newlines", in: `a\nb\nc`, want: "a\nb\nc"},
		{name: "escaped backslash stays literal", in: `a\\nb`, want: `a\nb`},
		{name: "trailing backslash", in: `a\`, want: `a\`},
		{name: "empty", in: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := unescapeNewlines(tt.in); got != tt.want {
				t.Errorf("unescapeNewlines(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGenerateCommandEndToEnd(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	out := filepath.Join(dir, "card.svg")

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{
		"generate", `これはテストです。\n次の文章が続きます`,
		"--author", "著者名",
		"--output", out,
		"--format", "svg",
		"--no-tui",
	})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output not written: %v", err)
	}
}

func TestGenerateCommandRejectsEmptyQuote(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", filepath.Join(dir, "cache"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))

	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "   ", "--no-tui"})

	if err := root.Execute(); err == nil {
		t.Fatal("Execute() succeeded for empty quote")
	}
}

func TestPlanCommandPrintsJSON(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"plan", "あいうえおかきくけこ、さしすせそ"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "quote_lines") {
		t.Errorf("plan output missing quote_lines: %s", got)
	}
	if !strings.Contains(got, "canvas_height") {
		t.Errorf("plan output missing canvas_height: %s", got)
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()

	for _, name := range []string{"generate", "plan", "completion"} {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing %q subcommand", name)
		}
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	cfg, err := loadConfig("", 0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if cfg != nil {
		t.Error("loadConfig with no overrides should return nil")
	}

	cfg, err = loadConfig("", 1000, 50)
	if err != nil {
		t.Fatal(err)
	}
	if cfg == nil {
		t.Fatal("loadConfig returned nil with overrides set")
	}
	if cfg.Canvas.Width != 1000 || cfg.Canvas.Margin != 50 {
		t.Errorf("overrides not applied: width=%g margin=%g", cfg.Canvas.Width, cfg.Canvas.Margin)
	}

	// Overrides that leave no room for text are rejected
	if _, err := loadConfig("", 100, 60); err == nil {
		t.Error("loadConfig accepted margins wider than the canvas")
	}
}

func TestCacheDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/tmp/xdg-cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-cache", appName) {
		t.Errorf("cacheDir() = %q", dir)
	}
}

func TestStateDirRespectsXDG(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/tmp/xdg-state")
	dir, err := stateDir()
	if err != nil {
		t.Fatal(err)
	}
	if dir != filepath.Join("/tmp/xdg-state", appName) {
		t.Errorf("stateDir() = %q", dir)
	}
}

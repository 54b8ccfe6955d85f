package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/speedtype/internal/model"
	"github.com/verte-zerg/speedtype/internal/wordlist"
)

func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func writeConfig(t *testing.T, dir, body string) {
	t.Helper()
	path := filepath.Join(dir, "speedtype", "config.toml")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestRootCmdFlags(t *testing.T) {
	root := newRootCmd()
	if root.Use != "speedtype" {
		t.Fatalf("root.Use = %q, want speedtype", root.Use)
	}
	duration := root.Flags().Lookup("duration")
	if duration == nil || duration.DefValue != "60" {
		t.Fatalf("expected --duration flag defaulting to 60")
	}
	if root.Flags().Lookup("log-file") == nil {
		t.Fatalf("expected --log-file flag")
	}
	if root.PersistentFlags().Lookup("wordlist") == nil {
		t.Fatalf("expected persistent --wordlist flag")
	}
	names := map[string]bool{}
	for _, sub := range root.Commands() {
		names[sub.Name()] = true
	}
	if !names["config"] || !names["words"] {
		t.Fatalf("expected config and words subcommands, got %v", names)
	}
}

func TestWordsCmdPrintsVocabularyWords(t *testing.T) {
	isolateConfig(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"words"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	words := strings.Fields(out.String())
	if len(words) != model.WordsPerList {
		t.Fatalf("expected %d words, got %d", model.WordsPerList, len(words))
	}
	allowed := map[string]bool{}
	for _, w := range wordlist.Vocabulary() {
		allowed[w] = true
	}
	for _, w := range words {
		if !allowed[w] {
			t.Fatalf("unexpected word %q", w)
		}
	}
}

func TestWordsCmdCustomWordList(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("Zebra\nyak\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"words", "-n", "3", "--wordlist", path})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "yak yak yak" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWordsCmdWordListFromConfig(t *testing.T) {
	dir := isolateConfig(t)
	path := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(path, []byte("owl\n"), 0o644); err != nil {
		t.Fatalf("write words: %v", err)
	}
	writeConfig(t, dir, "[test]\nwordlist = \""+filepath.ToSlash(path)+"\"\n")
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"words", "-n", "2"})
	if err := root.Execute(); err != nil {
		t.Fatalf("execute: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "owl owl" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestWordsCmdMissingWordList(t *testing.T) {
	dir := isolateConfig(t)
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"words", "--wordlist", filepath.Join(dir, "missing.txt")})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for missing word list")
	}
}

func TestResolveConfigFlagOverridesFile(t *testing.T) {
	dir := isolateConfig(t)
	writeConfig(t, dir, "[test]\nduration = 30\n")

	root := newRootCmd()
	if err := root.ParseFlags([]string{"--duration", "120"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err := resolveConfig(root)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if cfg.Duration != model.Duration120 {
		t.Fatalf("expected flag to win, got %d", cfg.Duration)
	}

	root = newRootCmd()
	if err := root.ParseFlags(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	cfg, err = resolveConfig(root)
	if err != nil {
		t.Fatalf("resolve config: %v", err)
	}
	if cfg.Duration != model.Duration30 {
		t.Fatalf("expected file value, got %d", cfg.Duration)
	}
}

func TestValidateConfig(t *testing.T) {
	for _, d := range model.Durations {
		if err := validateConfig(model.Config{Duration: d}); err != nil {
			t.Fatalf("duration %d rejected: %v", d, err)
		}
	}
	if err := validateConfig(model.Config{Duration: 45}); err == nil {
		t.Fatalf("expected 45 to be rejected")
	}
}

func TestRootRejectsInvalidDuration(t *testing.T) {
	isolateConfig(t)
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"--duration", "45"})
	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "--duration") {
		t.Fatalf("expected duration error, got %v", err)
	}
}

func TestEnsureConfigFileWritesTemplate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "speedtype", "config.toml")
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	if !strings.Contains(string(data), "[test]") || !strings.Contains(string(data), "duration = 60") {
		t.Fatalf("unexpected template:\n%s", data)
	}
	if err := os.WriteFile(path, []byte("[test]\n"), 0o644); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	if err := ensureConfigFile(path); err != nil {
		t.Fatalf("ensure config: %v", err)
	}
	if data, _ := os.ReadFile(path); string(data) != "[test]\n" {
		t.Fatalf("existing config was overwritten")
	}
}

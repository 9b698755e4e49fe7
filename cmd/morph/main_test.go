package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict.txt", "kitap\nAnkara\n")

	out, err := run(t, "", "analyze", "--lexicon", dict, "kitabı", "xyzzy")
	if err != nil {
		t.Fatalf("analyze: %v\n%s", err, out)
	}
	t.Log(out)
	if !strings.Contains(out, "kitap:Noun") {
		t.Errorf("output lacks the kitap analysis:\n%s", out)
	}
	if !strings.Contains(out, "(no analysis)") {
		t.Errorf("output lacks the xyzzy miss:\n%s", out)
	}

	out, err = run(t, "Ankara'da kitap\n", "analyze", "--lexicon", dict)
	if err != nil {
		t.Fatalf("analyze stdin: %v", err)
	}
	if strings.Count(out, "(no analysis)") != 0 {
		t.Errorf("stdin text has unanalyzed words:\n%s", out)
	}
}

func TestCompileCommand(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict.txt", "kitap\nev\n")
	yml := writeFile(t, dir, "num.yaml", "items:\n  - lemma: dört\n    pos: Num\n    secondary: Card\n")
	lex := filepath.Join(dir, "out.lex")

	out, err := run(t, "", "compile", "-o", lex, dict, yml)
	if err != nil {
		t.Fatalf("compile: %v\n%s", err, out)
	}
	if !strings.Contains(out, "wrote 3 items") {
		t.Errorf("compile output = %q", out)
	}

	out, err = run(t, "", "analyze", "--compiled", lex, "evde")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(out, "(no analysis)") {
		t.Errorf("evde not analyzed with the compiled lexicon:\n%s", out)
	}

	if _, err := run(t, "", "compile", dict); err == nil {
		t.Error("compile without -o succeeded")
	}
}

func TestConfigFile(t *testing.T) {
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict.txt", "sıra\nşıra\n")
	cfg := writeFile(t, dir, "morph.yaml",
		"lexicon: ["+dict+"]\nignore_diacritics: true\nno_cache: true\n")

	opts := &options{configPath: cfg}
	cmd := newRootCmd()
	if err := opts.resolve(cmd); err != nil {
		t.Fatal(err)
	}
	if !opts.IgnoreDiacritics || !opts.NoCache || len(opts.Lexicon) != 1 {
		t.Fatalf("options = %+v", opts)
	}
	m, err := opts.morphology(cmd)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := m.CacheStats(); ok {
		t.Error("cache enabled despite no_cache")
	}
	wa := m.Analyze("sira")
	if wa.AnalysisCount() != 2 {
		t.Errorf("sira: %d analyses, want 2", wa.AnalysisCount())
	}
}

func TestConfigFlagWins(t *testing.T) {
	dir := t.TempDir()
	cfg := writeFile(t, dir, "morph.yaml", "ignore_diacritics: true\n")
	dict := writeFile(t, dir, "dict.txt", "sıra\n")

	out, err := run(t, "", "analyze", "--config", cfg, "--ignore-diacritics=false", "--lexicon", dict, "sira")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "(no analysis)") {
		t.Errorf("flag did not override the config file:\n%s", out)
	}
}

package tests

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestE2ETranslate translates a small document with a real provider and
// checks the tags survive. Skipped without an API key.
func TestE2ETranslate(t *testing.T) {
	var provider string
	switch {
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		provider = "anthropic"
	case os.Getenv("OPENAI_API_KEY") != "":
		provider = "openai"
	case os.Getenv("GOOGLE_API_KEY") != "":
		provider = "gemini"
	default:
		t.Skip("skipping translate test: no LLM API key available")
	}

	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	dir := t.TempDir()
	docPath := filepath.Join(dir, "scenario.json")
	if err := os.WriteFile(docPath, []byte(sampleDocument), 0644); err != nil {
		t.Fatal(err)
	}
	outPath := filepath.Join(dir, "scenario_de.yaml")

	output, err := run(t, binPath, "translate", docPath, "--provider", provider, "--language", "de", "-o", outPath)
	if err != nil {
		t.Fatalf("translate failed: %v\noutput: %s", err, output)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("translated document not written: %v", err)
	}
	for _, tag := range []string{"[icon:star]", "[pagebreak]", "[color:red]", "[defcolor]", "[ruby:"} {
		if !strings.Contains(string(data), tag) {
			t.Errorf("translated document lost %s:\n%s", tag, data)
		}
	}
}

// TestE2ETranslate_Unconfigured checks that a provider without an API key
// fails before any request is made.
func TestE2ETranslate_Unconfigured(t *testing.T) {
	binPath, cleanup := buildTestBinary(t)
	defer cleanup()

	dir := t.TempDir()
	docPath := filepath.Join(dir, "scenario.json")
	if err := os.WriteFile(docPath, []byte(sampleDocument), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := []string{"translate", docPath, "--provider", "gemini"}
	t.Setenv("GOOGLE_API_KEY", "")
	output, err := run(t, binPath, cmd...)
	if err == nil {
		t.Errorf("expected error without an API key, got: %s", output)
	}
}

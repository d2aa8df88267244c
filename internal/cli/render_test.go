package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// TestRenderCommandWritesFile verifies the static page is written with correctness metadata.
func TestRenderCommandWritesFile(t *testing.T) {
	bankPath := writeFile(t, "bank.yml", arithmeticBank)
	outPath := filepath.Join(t.TempDir(), "quiz.html")
	var stdout, stderr bytes.Buffer
	code := Run([]string{"render", "--bank", bankPath, "--out", outPath}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, stderr.String())
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	html := string(data)
	if !strings.Contains(html, `name="question1" value="4" data-correct="true"`) || !strings.Contains(html, `data-correct-answers="three"`) {
		t.Fatalf("unexpected html: %s", html)
	}
	if strings.Contains(html, "<form") {
		t.Fatalf("expected a preview page without a submit form")
	}
}

// TestRenderCommandAction verifies --action wraps the questions in a form posting to the given URL.
func TestRenderCommandAction(t *testing.T) {
	bankPath := writeFile(t, "bank.yml", arithmeticBank)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"render", "--bank", bankPath, "--action", "http://localhost:8080/submit#result"}, &stdout, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d: %s", ExitOK, code, stderr.String())
	}
	html := stdout.String()
	if !strings.Contains(html, `<form method="post" action="http://localhost:8080/submit#result">`) {
		t.Fatalf("expected submit form in %s", html)
	}
	if !strings.Contains(html, `id="submit-quiz"`) {
		t.Fatalf("expected submit button")
	}
}

// TestRenderCommandMalformedBank verifies the diagnostic is printed for an empty bank.
func TestRenderCommandMalformedBank(t *testing.T) {
	bankPath := writeFile(t, "bank.json", `[]`)
	var stdout, stderr bytes.Buffer
	code := Run([]string{"render", "--bank", bankPath}, &stdout, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "Quiz data could not be loaded.") || stdout.Len() != 0 {
		t.Fatalf("unexpected output %q / %q", stdout.String(), stderr.String())
	}
}

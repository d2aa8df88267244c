package cli

import (
	"os"
	"path/filepath"
	"testing"
)

const arithmeticBank = `title: Arithmetic
questions:
  - question: "2 + 2?"
    type: single-answer
    options: ["3", "4"]
    answer: "4"
  - question: Even numbers
    type: multiple-answer
    options: ["1", "2", "4"]
    answer: ["2", "4"]
  - question: Spell 3
    type: free-form
    answer: three
`

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

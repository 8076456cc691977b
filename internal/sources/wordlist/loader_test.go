package wordlist

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func TestLoaderLoadText(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "words.txt")

	content := `# comment line
apple

  Banana
cherry
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test word list: %v", err)
	}

	words, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := []string{"apple", "Banana", "cherry"}
	if len(words) != len(want) {
		t.Fatalf("Load() returned %d words, want %d (%v)", len(words), len(want), words)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Load()[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestLoaderLoadYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "words.yaml")

	content := `words:
  - go
  - hub
categories:
  tech: [app, dev]
  nature:
    - sky
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	words, err := NewLoader(path).Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	sort.Strings(words)
	want := []string{"app", "dev", "go", "hub", "sky"}
	if len(words) != len(want) {
		t.Fatalf("Load() = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("Load()[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestLoaderLoadInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "words.yml")

	if err := os.WriteFile(path, []byte("words: [unclosed"), 0o644); err != nil {
		t.Fatalf("Failed to create test YAML file: %v", err)
	}

	if _, err := NewLoader(path).Load(); err == nil {
		t.Error("Load() with malformed yaml should return error")
	}
}

func TestLoaderLoadFileNotFound(t *testing.T) {
	loader := NewLoader("/nonexistent/path/words.txt")
	if _, err := loader.Load(); err == nil {
		t.Error("Load() with non-existent file should return error")
	}
}

func TestLoaderEmbeddedDefault(t *testing.T) {
	loader := NewLoader("")
	if loader.Source() != "embedded" {
		t.Errorf("Source() = %q, want embedded", loader.Source())
	}

	words, err := loader.Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(words) < 100 {
		t.Errorf("embedded list too small: %d words", len(words))
	}
	for _, w := range words {
		if w == "" || w[0] == '#' {
			t.Errorf("embedded list contains comment or blank entry %q", w)
		}
	}
}

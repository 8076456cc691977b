package wordlist

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed words.txt
var defaultWords []byte

// Loader reads a word list from disk.
// Files ending in .yaml or .yml are parsed as YAML (see File); anything else
// is treated as plain text with one word per line and '#' comments.
type Loader struct {
	filePath string
}

// NewLoader creates a loader for filePath. An empty path selects the
// embedded default list.
func NewLoader(filePath string) *Loader {
	return &Loader{
		filePath: filePath,
	}
}

// Source describes where words are read from, for logs.
func (l *Loader) Source() string {
	if l.filePath == "" {
		return "embedded"
	}
	return l.filePath
}

// Load reads and parses the word list.
func (l *Loader) Load() ([]string, error) {
	if l.filePath == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(l.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}

	switch strings.ToLower(filepath.Ext(l.filePath)) {
	case ".yaml", ".yml":
		var f File
		if err := yaml.Unmarshal(data, &f); err != nil {
			return nil, fmt.Errorf("failed to parse word list yaml: %w", err)
		}
		return f.All(), nil
	default:
		return parseText(data)
	}
}

// Default returns the embedded word list.
func Default() []string {
	words, _ := parseText(defaultWords)
	return words
}

func parseText(data []byte) ([]string, error) {
	var words []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan word list: %w", err)
	}
	return words, nil
}

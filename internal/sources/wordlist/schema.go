package wordlist

// File is the YAML word list layout.
//
//	words: [go, at, hub]
//	categories:
//	  tech: [app, dev, api]
//	  nature: [sky, sea]
//
// Both keys are optional; entries from all of them are merged.
type File struct {
	Words      []string            `yaml:"words,omitempty"`
	Categories map[string][]string `yaml:"categories,omitempty"`
}

// All flattens the file into a single list.
func (f File) All() []string {
	n := len(f.Words)
	for _, ws := range f.Categories {
		n += len(ws)
	}
	out := make([]string, 0, n)
	out = append(out, f.Words...)
	for _, ws := range f.Categories {
		out = append(out, ws...)
	}
	return out
}

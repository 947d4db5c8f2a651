// Package resources loads the decision tree, keyword dictionary, and analyzer
// options from disk, falling back to embedded defaults when no path is
// configured.
package resources

import (
	"embed"
	"fmt"
	"os"

	"github.com/manuelguarniz/project-nlp-simplified/internal/config"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
	"github.com/manuelguarniz/project-nlp-simplified/internal/keywords"
	"github.com/manuelguarniz/project-nlp-simplified/internal/tree"
)

//go:embed defaults/tree.json defaults/keywords.json
var defaults embed.FS

// LoadTree builds the decision tree from path, or from the embedded default
// when path is empty.
func LoadTree(path string) (*tree.Tree, error) {
	data, err := read(path, "defaults/tree.json")
	if err != nil {
		return nil, apperrors.Configuration(
			fmt.Sprintf("reading tree file %q", path), err)
	}
	return tree.Parse(data)
}

// LoadDictionary builds the keyword dictionary from path, or from the
// embedded default when path is empty.
func LoadDictionary(path string) (keywords.Dictionary, error) {
	data, err := read(path, "defaults/keywords.json")
	if err != nil {
		return nil, apperrors.Configuration(
			fmt.Sprintf("reading keywords file %q", path), err)
	}
	return keywords.ParseDictionary(data)
}

// LoadOptions reads analyzer options from path, or returns the defaults when
// path is empty.
func LoadOptions(path string) (config.Options, error) {
	if path == "" {
		return config.DefaultOptions(), nil
	}
	return config.LoadOptions(path)
}

func read(path, embedded string) ([]byte, error) {
	if path == "" {
		return defaults.ReadFile(embedded)
	}
	return os.ReadFile(path)
}

// Package article builds the read-only AnalysisInput one run operates
// on: the article body from disk plus an optional YAML metadata sidecar
// supplied by the article/document metadata provider.
package article

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/qiwenlab/proofgate/pkg/model"
)

// Load reads the article body and, when metaPath is non-empty, the
// metadata sidecar. HTML articles keep their markup for the structural
// rules and get a tag-stripped text view for the text rules.
func Load(articlePath, metaPath string) (*model.AnalysisInput, error) {
	body, err := os.ReadFile(articlePath)
	if err != nil {
		return nil, fmt.Errorf("read article: %w", err)
	}

	input := &model.AnalysisInput{}
	switch strings.ToLower(filepath.Ext(articlePath)) {
	case ".html", ".htm":
		input.HTML = string(body)
		input.Text = ExtractText(input.HTML)
	default:
		input.Text = string(body)
	}

	if metaPath != "" {
		meta, err := loadMeta(metaPath)
		if err != nil {
			return nil, err
		}
		input.Meta = meta
	}
	return input, nil
}

func loadMeta(path string) (*model.DocumentMeta, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	var meta model.DocumentMeta
	if err := yaml.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("parse metadata: %w", err)
	}
	return &meta, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package journal

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// Export writes the entries matching f to path. The extension picks the
// format: .yaml/.yml or .json.
func (s *Store) Export(ctx context.Context, f Filter, path string) (int, error) {
	f.Limit = exportLimit
	entries, err := s.Recent(ctx, f)
	if err != nil {
		return 0, fmt.Errorf("querying for export: %w", err)
	}

	var data []byte
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(entries)
	case ".json":
		data, err = json.MarshalIndent(entries, "", "  ")
	default:
		return 0, fmt.Errorf("unsupported export format %q: use .yaml or .json", ext)
	}
	if err != nil {
		return 0, fmt.Errorf("marshaling export: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return 0, fmt.Errorf("writing export: %w", err)
	}
	return len(entries), nil
}

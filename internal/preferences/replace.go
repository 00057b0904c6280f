package preferences

import (
	"fmt"
	"os"
	"strings"

	"github.com/openwith/sharext/internal/platform"
)

// ReplaceInFile rewrites path with every table key replaced by its value,
// applied in table order. The file keeps its permissions.
func ReplaceInFile(path string, table Table) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	content := string(data)
	for _, p := range table {
		content = strings.ReplaceAll(content, p.Key, p.Value)
	}
	return platform.WriteFile(path, []byte(content), 0644)
}

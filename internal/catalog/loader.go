package catalog

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/vitaclub/wellness-engine/internal/domain"
)

// LoadFromFile reads menu items from a JSON file. Callers fall back to the
// built-in Default catalog on error.
func LoadFromFile(path string) ([]domain.MenuItem, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("unmarshal menu: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu file %s contains no items", path)
	}
	return items, nil
}

package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vitaclub/wellness-engine/internal/domain"
)

func TestDefaultCatalogShape(t *testing.T) {
	if len(Default) != 14 {
		t.Fatalf("default catalog size=%d want=14", len(Default))
	}

	seen := make(map[string]bool, len(Default))
	categories := make(map[domain.MealCategory]int)
	for _, item := range Default {
		if item.ID == "" || item.Name == "" {
			t.Fatalf("item missing id or name: %+v", item)
		}
		if seen[item.ID] {
			t.Fatalf("duplicate id %q", item.ID)
		}
		seen[item.ID] = true
		categories[item.Category]++
	}

	// Every scored slot must have candidates in the shipped catalog.
	if categories[domain.CategoryBreakfast] == 0 || categories[domain.CategoryMain] == 0 || categories[domain.CategorySalad] == 0 {
		t.Fatalf("catalog missing a slot category: %v", categories)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "menu.json")

	const menu = `[
  {"id": "bowl-1", "name": "Green Bowl", "price": 120000, "protein": 24,
   "category": "salad", "tags": ["low-carb", "vegan"], "order_link": "https://example.test/order"}
]`
	if err := os.WriteFile(path, []byte(menu), 0o644); err != nil {
		t.Fatalf("write menu: %v", err)
	}

	items, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].ID != "bowl-1" || items[0].Category != domain.CategorySalad {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Fatal("missing file should error")
	}

	empty := filepath.Join(t.TempDir(), "empty.json")
	if err := os.WriteFile(empty, []byte(`[]`), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadFromFile(empty); err == nil {
		t.Fatal("empty catalog should error")
	}
}

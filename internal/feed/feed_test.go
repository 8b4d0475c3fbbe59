package feed

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadCategories(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "categories.yaml")
	doc := `categories:
  - id: "2023"
    label: "2023"
    description: "posts from 2023"
    items:
      - id: "1"
        text: "first post"
        favorites: 12
      - id: "2"
        text: "second post"
  - id: "2024"
    label: "2024"
    items: []
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cats, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if len(cats) != 2 {
		t.Fatalf("got %d categories, want 2", len(cats))
	}
	if cats[0].ID != "2023" || cats[1].ID != "2024" {
		t.Errorf("category order not preserved: %q, %q", cats[0].ID, cats[1].ID)
	}
	if len(cats[0].Items) != 2 {
		t.Errorf("got %d items, want 2", len(cats[0].Items))
	}
	if cats[0].Items[0].Favorites != 12 {
		t.Errorf("favorites = %d, want 12", cats[0].Items[0].Favorites)
	}
}

func TestLoadCategories_MissingFile(t *testing.T) {
	_, err := LoadCategories(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestSaveCategories_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.yaml")

	in := []Category{
		{ID: "a", Label: "Alpha", Description: "first", Items: []Item{{ID: "1", Text: "hello"}}},
		{ID: "b", Label: "Beta"},
	}
	if err := SaveCategories(path, in); err != nil {
		t.Fatalf("SaveCategories: %v", err)
	}

	out, err := LoadCategories(path)
	if err != nil {
		t.Fatalf("LoadCategories: %v", err)
	}
	if len(out) != 2 || out[0].ID != "a" || out[1].Label != "Beta" {
		t.Errorf("round trip mismatch: %+v", out)
	}
	if out[0].Items[0].Text != "hello" {
		t.Errorf("item text = %q, want hello", out[0].Items[0].Text)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name       string
		categories []Category
		wantErr    bool
	}{
		{"valid", []Category{{ID: "a"}, {ID: "b"}}, false},
		{"empty sequence", nil, true},
		{"empty id", []Category{{ID: ""}}, true},
		{"duplicate id", []Category{{ID: "a"}, {ID: "a"}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.categories)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

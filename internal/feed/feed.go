// pattern: Functional Core

// Package feed loads the ordered category/content sequences the carousel
// presents. Categories are read once at startup and treated as immutable;
// a file watcher reports changes so the caller can reload wholesale.
package feed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Item is one content unit inside a category column.
type Item struct {
	ID        string    `yaml:"id" json:"id"`
	Text      string    `yaml:"text" json:"text"`
	Author    string    `yaml:"author,omitempty" json:"author,omitempty"`
	CreatedAt time.Time `yaml:"created_at,omitempty" json:"created_at,omitempty"`
	Favorites int       `yaml:"favorites,omitempty" json:"favorites,omitempty"`
	Retweets  int       `yaml:"retweets,omitempty" json:"retweets,omitempty"`
}

// Category is an ordered, fixed-identity content column descriptor. The
// sequence order in the file defines column order.
type Category struct {
	ID          string `yaml:"id" json:"id"`
	Label       string `yaml:"label" json:"label"`
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Items       []Item `yaml:"items" json:"items"`
}

// categoriesFile is the on-disk YAML document.
type categoriesFile struct {
	Categories []Category `yaml:"categories"`
}

// LoadCategories reads an ordered category sequence from a YAML file.
func LoadCategories(path string) ([]Category, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f categoriesFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse categories file: %w", err)
	}

	if err := Validate(f.Categories); err != nil {
		return nil, err
	}
	return f.Categories, nil
}

// SaveCategories writes the category sequence as a YAML document.
func SaveCategories(path string, categories []Category) error {
	if err := Validate(categories); err != nil {
		return err
	}
	data, err := yaml.Marshal(categoriesFile{Categories: categories})
	if err != nil {
		return fmt.Errorf("encode categories: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the fixed-identity rules: at least one category, and
// unique non-empty ids.
func Validate(categories []Category) error {
	if len(categories) == 0 {
		return fmt.Errorf("no categories defined")
	}
	seen := make(map[string]struct{}, len(categories))
	for i, c := range categories {
		if c.ID == "" {
			return fmt.Errorf("category %d has an empty id", i)
		}
		if _, dup := seen[c.ID]; dup {
			return fmt.Errorf("duplicate category id %q", c.ID)
		}
		seen[c.ID] = struct{}{}
	}
	return nil
}

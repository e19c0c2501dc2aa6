package dnd

import "fmt"

// Item is one row of a reorderable list. ID must be unique within the list
// and stays with the item across reorders. Name is only displayed.
type Item struct {
	ID   string `yaml:"id" toml:"id"`
	Name string `yaml:"name" toml:"name"`
}

// ValidateItems checks that every item has a non-empty id and that no id
// appears twice.
func ValidateItems(items []Item) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: item at index %d: %w", ErrInvalidConfig, i, ErrEmptyID)
		}
		if prev, ok := seen[item.ID]; ok {
			return fmt.Errorf("%w: %q at index %d and %d: %w", ErrInvalidConfig, item.ID, prev, i, ErrDuplicateID)
		}
		seen[item.ID] = i
	}
	return nil
}

// IndexOf returns the position of the item with the given id, or -1.
func IndexOf(items []Item, id string) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

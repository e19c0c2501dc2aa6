// Package items provides the item sets the demo list starts from: generated
// sample data or a TOML file.
package items

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/BurntSushi/toml"

	"github.com/rileylov/reorderlist/internal/dnd"
)

// ErrNoItems is returned when an items file defines no items.
var ErrNoItems = errors.New("no items defined")

// Generate returns n sample items with ids "1".."n" and names "Item-<id>".
func Generate(n int) []dnd.Item {
	if n <= 0 {
		return nil
	}
	out := make([]dnd.Item, 0, n)
	for id := 1; id <= n; id++ {
		s := strconv.Itoa(id)
		out = append(out, dnd.Item{ID: s, Name: "Item-" + s})
	}
	return out
}

// file is the top-level TOML structure of an items file:
//
//	[[item]]
//	id = "milk"
//	name = "Milk"
type file struct {
	Item []dnd.Item `toml:"item"`
}

// Parse decodes items from TOML data. Items without a name are named after
// their id.
func Parse(data string) ([]dnd.Item, error) {
	var f file
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode items: unknown key %q", undecoded[0].String())
	}
	if len(f.Item) == 0 {
		return nil, ErrNoItems
	}
	for i := range f.Item {
		if f.Item[i].Name == "" {
			f.Item[i].Name = f.Item[i].ID
		}
	}
	if err := dnd.ValidateItems(f.Item); err != nil {
		return nil, err
	}
	return f.Item, nil
}

// Load reads and parses an items file.
func Load(path string) ([]dnd.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read items file: %w", err)
	}
	items, err := Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return items, nil
}

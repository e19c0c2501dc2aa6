// Package report prints the list's final order after the program exits.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/rodaine/table"
	"gopkg.in/yaml.v3"

	"github.com/rileylov/reorderlist/internal/dnd"
)

var boldStyle = lipgloss.NewStyle().Bold(true)

// Order is the YAML document written by WriteYAML.
type Order struct {
	Title string     `yaml:"title,omitempty"`
	Moves int        `yaml:"moves"`
	Items []dnd.Item `yaml:"items"`
}

// WriteTable writes items as a position/id/name table.
func WriteTable(w io.Writer, items []dnd.Item) {
	tbl := table.New("#", "ID", "Name").WithWriter(w)
	tbl.WithPadding(2)
	tbl.WithWidthFunc(lipgloss.Width)
	tbl.WithFirstColumnFormatter(func(format string, vals ...interface{}) string {
		return boldStyle.Render(fmt.Sprintf(format, vals...))
	})
	for i, item := range items {
		tbl.AddRow(strconv.Itoa(i+1), item.ID, item.Name)
	}
	tbl.Print()
}

// WriteYAML writes the order as a YAML document.
func WriteYAML(w io.Writer, order Order) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(order); err != nil {
		return fmt.Errorf("encode order: %w", err)
	}
	return enc.Close()
}

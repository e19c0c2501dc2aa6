package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileylov/reorderlist/internal/config"
	"github.com/rileylov/reorderlist/internal/items"
	"github.com/rileylov/reorderlist/internal/report"
)

func TestBindFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[list]
title = "From file"
item_height = 2
item_count = 3
`), 0o644))

	cmd := newRootCommand()
	require.NoError(t, cmd.Flags().Parse([]string{"--items", "5", "-o", "yaml"}))

	v := config.New(path)
	require.NoError(t, bindFlags(v, cmd))
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, "From file", cfg.List.Title)
	assert.Equal(t, 2, cfg.List.ItemHeight)
	assert.Equal(t, 5, cfg.List.ItemCount, "flag overrides file")
	assert.Equal(t, config.OutputYAML, cfg.Output.Format)
}

func TestLoadItems(t *testing.T) {
	list, err := loadItems(config.ListConfig{ItemCount: 4})
	require.NoError(t, err)
	assert.Len(t, list, 4)

	path := filepath.Join(t.TempDir(), "items.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[item]]
id = "a"
name = "Apple"

[[item]]
id = "b"
`), 0o644))

	list, err = loadItems(config.ListConfig{ItemCount: 4, ItemsFile: path})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Apple", list[0].Name)
	assert.Equal(t, "b", list[1].Name)

	_, err = loadItems(config.ListConfig{ItemsFile: filepath.Join(t.TempDir(), "missing.toml")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteOrder(t *testing.T) {
	order := report.Order{Title: "Groceries", Moves: 1, Items: items.Generate(2)}

	tests := []struct {
		format string
		want   []string
	}{
		{format: config.OutputTable, want: []string{"ID", "Item-1", "Item-2"}},
		{format: config.OutputYAML, want: []string{"title: Groceries", "moves: 1", "- id: \"1\""}},
		{format: config.OutputNone},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeOrder(&buf, tt.format, order))
			if len(tt.want) == 0 {
				assert.Empty(t, buf.String())
				return
			}
			for _, want := range tt.want {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestVersionCommand(t *testing.T) {
	cmd := newRootCommand()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "reorderlist version dev")
}

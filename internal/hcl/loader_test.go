package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cellgridgo/internal/sheet"
)

func writeGridFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad_SingleFile(t *testing.T) {
	path := writeGridFile(t, t.TempDir(), "main.hcl", `
		grid "main" {
			rows = [
				["5", "=A1"],
				["=A1+B1", ""],
			]
		}
	`)

	grids, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, grids, 1)

	g := grids[0]
	assert.Equal(t, "main", g.Name)
	assert.Equal(t, sheet.Bounds{Rows: 2, Cols: 2}, g.Bounds())
	assert.Equal(t, "=A1+B1", g.Raw(sheet.Coord{Row: 1, Col: 0}))
}

func TestLoad_BareNumbersConvertToStrings(t *testing.T) {
	path := writeGridFile(t, t.TempDir(), "main.hcl", `
		grid "numeric" {
			rows = [[5, "=A1"]]
		}
	`)

	grids, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, grids, 1)
	assert.Equal(t, "5", grids[0].Raw(sheet.Coord{Row: 0, Col: 0}))
}

func TestLoad_DirectoryDiscovery(t *testing.T) {
	dir := t.TempDir()
	writeGridFile(t, dir, "a.hcl", `
		grid "first" {
			rows = [["1"]]
		}
	`)
	sub := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(sub, 0700))
	writeGridFile(t, sub, "b.hcl", `
		grid "second" {
			rows = [["2"]]
		}

		grid "third" {
			rows = []
		}
	`)
	writeGridFile(t, dir, "ignored.txt", "not hcl")

	grids, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, grids, 3)

	names := []string{grids[0].Name, grids[1].Name, grids[2].Name}
	assert.ElementsMatch(t, []string{"first", "second", "third"}, names)
}

func TestLoad_Errors(t *testing.T) {
	t.Run("syntax error", func(t *testing.T) {
		path := writeGridFile(t, t.TempDir(), "bad.hcl", `grid "x" {`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "failed to parse")
	})

	t.Run("rows is not a list of lists", func(t *testing.T) {
		path := writeGridFile(t, t.TempDir(), "bad.hcl", `
			grid "x" {
				rows = "nope"
			}
		`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "list of lists")
	})

	t.Run("null rows", func(t *testing.T) {
		path := writeGridFile(t, t.TempDir(), "bad.hcl", `
			grid "x" {
				rows = null
			}
		`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "must not be null")
	})

	t.Run("ragged rows", func(t *testing.T) {
		path := writeGridFile(t, t.TempDir(), "bad.hcl", `
			grid "x" {
				rows = [["1", "2"], ["3"]]
			}
		`)
		_, err := NewLoader().Load(context.Background(), path)
		assert.ErrorContains(t, err, "expected 2")
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent"))
		assert.ErrorContains(t, err, "failed to find grid files")
	})
}

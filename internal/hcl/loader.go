package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/vk/cellgridgo/internal/ctxlog"
	"github.com/vk/cellgridgo/internal/fsutil"
	"github.com/vk/cellgridgo/internal/schema"
	"github.com/vk/cellgridgo/internal/sheet"
)

// Loader discovers and parses HCL grid files into sheet models.
type Loader struct {
	parser *hclparse.Parser
}

// NewLoader creates a new HCL grid loader.
func NewLoader() *Loader {
	return &Loader{parser: hclparse.NewParser()}
}

// Load walks every given path (a single .hcl file or a directory tree of
// them) and returns all grid blocks found, in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) ([]*sheet.Grid, error) {
	logger := ctxlog.FromContext(ctx)

	var files []string
	for _, path := range paths {
		found, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("failed to find grid files in %s: %w", path, err)
		}
		files = append(files, found...)
	}
	logger.Debug("Grid file discovery complete.", "file_count", len(files))

	var grids []*sheet.Grid
	for _, file := range files {
		fileGrids, err := l.loadFile(ctx, file)
		if err != nil {
			return nil, err
		}
		grids = append(grids, fileGrids...)
	}
	return grids, nil
}

// loadFile parses one HCL file and translates each grid block it contains.
func (l *Loader) loadFile(ctx context.Context, filePath string) ([]*sheet.Grid, error) {
	hclFile, diags := l.parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", filePath, diags)
	}

	var parsed schema.GridFile
	if diags := gohcl.DecodeBody(hclFile.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", filePath, diags)
	}

	grids := make([]*sheet.Grid, 0, len(parsed.Grids))
	for _, block := range parsed.Grids {
		rows, err := rowsFromExpression(block.Rows)
		if err != nil {
			return nil, fmt.Errorf("grid %q in %s: %w", block.Name, filePath, err)
		}
		grid, err := sheet.New(block.Name, rows)
		if err != nil {
			return nil, fmt.Errorf("in %s: %w", filePath, err)
		}
		ctxlog.FromContext(ctx).Debug("Grid block loaded.", "grid", block.Name, "file", filePath)
		grids = append(grids, grid)
	}
	return grids, nil
}

// rowsFromExpression evaluates the `rows` attribute and converts it to raw
// string rows. Going through cty's conversion means bare numbers in the HCL
// source arrive as their decimal string form, same as if they were quoted.
func rowsFromExpression(expr hcl.Expression) ([][]string, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to evaluate rows: %w", diags)
	}

	if val.IsNull() {
		return nil, fmt.Errorf("rows must not be null")
	}

	converted, err := convert.Convert(val, cty.List(cty.List(cty.String)))
	if err != nil {
		return nil, fmt.Errorf("rows must be a list of lists of strings: %w", err)
	}

	var rows [][]string
	if converted.LengthInt() == 0 {
		return rows, nil
	}
	if err := gocty.FromCtyValue(converted, &rows); err != nil {
		return nil, fmt.Errorf("failed to decode rows: %w", err)
	}
	return rows, nil
}

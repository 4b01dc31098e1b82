package scenario

import (
	"fmt"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"

	"github.com/katalvlaran/gridpath/grid"
)

// hclFile is the top-level structure of a scenario file.
type hclFile struct {
	Name      string     `hcl:"name,optional"`
	Algorithm string     `hcl:"algorithm,optional"`
	Grid      *hclGrid   `hcl:"grid,block"`
	Walls     []*hclWall `hcl:"wall,block"`
}

type hclGrid struct {
	Rows    int            `hcl:"rows,optional"`
	Columns int            `hcl:"columns,optional"`
	Start   hcl.Expression `hcl:"start,optional"`
	Finish  hcl.Expression `hcl:"finish,optional"`
	Layout  string         `hcl:"layout,optional"`
}

type hclWall struct {
	Label string         `hcl:"name,label"`
	From  hcl.Expression `hcl:"from,optional"`
	To    hcl.Expression `hcl:"to,optional"`
	Cells hcl.Expression `hcl:"cells,optional"`
}

var (
	pairType  = cty.List(cty.Number)
	pairsType = cty.List(pairType)
)

// Load reads and decodes the scenario file at path.
func Load(path string) (*Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, path, diags)
	}
	return decodeFile(f, path)
}

// Parse decodes a scenario from source bytes; filename is used in
// diagnostics only.
func Parse(src []byte, filename string) (*Scenario, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrParse, filename, diags)
	}
	return decodeFile(f, filename)
}

func decodeFile(f *hcl.File, filename string) (*Scenario, error) {
	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, filename, diags)
	}
	if parsed.Grid == nil {
		return nil, fmt.Errorf("%w: %s", ErrMissingGrid, filename)
	}

	s := &Scenario{Name: parsed.Name, Algorithm: Dijkstra}
	if parsed.Algorithm != "" {
		alg, err := ParseAlgorithm(parsed.Algorithm)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filename, err)
		}
		s.Algorithm = alg
	}

	if err := decodeGrid(parsed.Grid, s); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	for _, w := range parsed.Walls {
		cells, err := decodeWall(w)
		if err != nil {
			return nil, fmt.Errorf("%s: wall %q: %w", filename, w.Label, err)
		}
		s.Walls = append(s.Walls, cells...)
	}

	return s, nil
}

// decodeGrid fills the board of s from either a layout or explicit
// dimensions and endpoints.
func decodeGrid(b *hclGrid, s *Scenario) error {
	start, err := coord(b.Start)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	finish, err := coord(b.Finish)
	if err != nil {
		return fmt.Errorf("finish: %w", err)
	}

	if b.Layout != "" {
		if b.Rows != 0 || b.Columns != 0 || start != nil || finish != nil {
			return fmt.Errorf("%w: layout cannot be combined with explicit dimensions or endpoints", ErrDecode)
		}
		g, err := grid.Parse(strings.Split(b.Layout, "\n")...)
		if err != nil {
			return fmt.Errorf("layout: %w", err)
		}
		s.Board = grid.Config{
			Rows:    g.Rows,
			Columns: g.Columns,
			Start:   g.Start().Coord(),
			Finish:  g.Finish().Coord(),
		}
		s.Walls = g.Walls()
		return nil
	}

	if start == nil || finish == nil {
		return fmt.Errorf("%w: grid needs start and finish", ErrDecode)
	}
	s.Board = grid.Config{Rows: b.Rows, Columns: b.Columns, Start: *start, Finish: *finish}
	return nil
}

// decodeWall expands a wall block into cells: the from..to rectangle
// first, in row-major order, then the listed cells.
func decodeWall(w *hclWall) ([]grid.Coord, error) {
	from, err := coord(w.From)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}
	to, err := coord(w.To)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}
	listed, err := coords(w.Cells)
	if err != nil {
		return nil, fmt.Errorf("cells: %w", err)
	}

	var out []grid.Coord
	switch {
	case from != nil:
		if to == nil {
			to = from
		}
		out = rectangle(*from, *to)
	case to != nil:
		return nil, fmt.Errorf("%w: to without from", ErrDecode)
	case len(listed) == 0:
		return nil, fmt.Errorf("%w: wall covers no cells", ErrDecode)
	}

	return append(out, listed...), nil
}

// rectangle lists every cell of the inclusive rectangle spanned by a and b.
func rectangle(a, b grid.Coord) []grid.Coord {
	r0, r1 := minmax(a.Row, b.Row)
	c0, c1 := minmax(a.Col, b.Col)
	out := make([]grid.Coord, 0, (r1-r0+1)*(c1-c0+1))
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			out = append(out, grid.Coord{Row: r, Col: c})
		}
	}
	return out
}

func minmax(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// coord evaluates a [row, col] expression. An absent attribute yields nil.
func coord(expr hcl.Expression) (*grid.Coord, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrBadCoordinate, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	pair, err := convert.Convert(val, pairType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCoordinate, err)
	}
	return toCoord(pair)
}

// coords evaluates a list of [row, col] pairs. An absent attribute yields nil.
func coords(expr hcl.Expression) ([]grid.Coord, error) {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %w", ErrBadCoordinate, diags)
	}
	if val.IsNull() {
		return nil, nil
	}
	list, err := convert.Convert(val, pairsType)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCoordinate, err)
	}

	out := make([]grid.Coord, 0, list.LengthInt())
	for it := list.ElementIterator(); it.Next(); {
		_, pair := it.Element()
		c, err := toCoord(pair)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, nil
}

func toCoord(pair cty.Value) (*grid.Coord, error) {
	var xs []int
	if err := gocty.FromCtyValue(pair, &xs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadCoordinate, err)
	}
	if len(xs) != 2 {
		return nil, fmt.Errorf("%w: want [row, col], got %d values", ErrBadCoordinate, len(xs))
	}
	return &grid.Coord{Row: xs[0], Col: xs[1]}, nil
}

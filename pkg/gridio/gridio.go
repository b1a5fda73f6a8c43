package gridio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/gridatlas/gridatlas/pkg/errors"
	"github.com/gridatlas/gridatlas/pkg/gridmap"
)

// Problem is the JSON form of an embedding input: n countries and m
// required borders given as the endpoint arrays a and b.
type Problem struct {
	N int   `json:"n"`
	M int   `json:"m"`
	A []int `json:"a"`
	B []int `json:"b"`
}

// Graph builds the adjacency graph for the problem.
func (p Problem) Graph() (*gridmap.Graph, error) {
	return gridmap.NewGraph(p.N, p.M, p.A, p.B)
}

// gridDoc is the JSON envelope for a produced grid.
type gridDoc struct {
	Grid [][]int `json:"grid"`
}

// ReadProblem decodes a problem document from r.
// Decode failures and arity mismatches return INVALID_FORMAT errors;
// semantic validation (label ranges, self-loops) is left to
// gridmap.NewGraph.
func ReadProblem(r io.Reader) (Problem, error) {
	var p Problem
	if err := json.NewDecoder(r).Decode(&p); err != nil {
		return Problem{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode problem")
	}
	if len(p.A) != p.M || len(p.B) != p.M {
		return Problem{}, errors.New(errors.ErrCodeInvalidFormat,
			"edge arrays have lengths %d and %d, want m=%d", len(p.A), len(p.B), p.M)
	}
	return p, nil
}

// ReadProblemFile reads a problem document from a file.
func ReadProblemFile(path string) (Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return Problem{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadProblem(f)
}

// WriteProblem encodes a problem document to w with indentation.
func WriteProblem(p Problem, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(p); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode problem")
	}
	return nil
}

// ReadGrid decodes a grid document from r. The grid must be rectangular
// and non-empty.
func ReadGrid(r io.Reader) (gridmap.Grid, error) {
	var doc gridDoc
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode grid")
	}
	if len(doc.Grid) == 0 || len(doc.Grid[0]) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "grid is empty")
	}
	cols := len(doc.Grid[0])
	for i, row := range doc.Grid {
		if len(row) != cols {
			return nil, errors.New(errors.ErrCodeInvalidFormat,
				"grid is jagged: row %d has %d columns, row 0 has %d", i, len(row), cols)
		}
	}
	return gridmap.Grid(doc.Grid), nil
}

// ReadGridFile reads a grid document from a file.
func ReadGridFile(path string) (gridmap.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
	}
	defer f.Close()
	return ReadGrid(f)
}

// WriteGrid encodes a grid document to w with indentation.
func WriteGrid(g gridmap.Grid, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(gridDoc{Grid: g}); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode grid")
	}
	return nil
}

// WriteGridFile writes a grid document to a file with 0644 permissions.
func WriteGridFile(g gridmap.Grid, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteGrid(g, f)
}

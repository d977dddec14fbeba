// Package instance loads distance-matrix instances for the solver.
//
// An instance file is YAML (JSON is accepted as well, being a YAML subset):
//
//	name: ref5
//	description: optional free text
//	start: 0
//	distances:
//	  - [.inf, 2, 2]
//	  - [2, .inf, 4]
//	  - [2, 4, .inf]
//
// The diagonal sentinel may be written as .inf, inf, infinity or null. Shape
// (square, ≥ 2 nodes) and the start range are checked here; the distance
// values themselves are validated by the solver.
package instance

import (
	"embed"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/IanMeirellesDuraes/AntColonyOptimization-ACO-TSP/matrix"
)

// Sentinel errors returned by the loader.
var (
	// ErrUnknownInstance indicates a built-in name that does not exist.
	ErrUnknownInstance = errors.New("instance: unknown built-in instance")

	// ErrInvalidInstance indicates a malformed instance document.
	ErrInvalidInstance = errors.New("instance: invalid instance")
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// Instance is a named distance matrix with a default start node.
type Instance struct {
	Name        string
	Description string
	Start       int
	Distances   *matrix.Dense
}

// Size returns the number of nodes.
func (in *Instance) Size() int { return in.Distances.Rows() }

// symmetryTol is the absolute tolerance used by Symmetric.
const symmetryTol = 1e-9

// Symmetric reports whether d[i][j] == d[j][i] for every pair, within 1e-9.
func (in *Instance) Symmetric() bool {
	return matrix.ValidateSymmetric(in.Distances, symmetryTol) == nil
}

// document is the on-disk shape. Distances are kept as nodes so that null
// and the spellings of infinity can be read uniformly.
type document struct {
	Name        string        `yaml:"name"`
	Description string        `yaml:"description"`
	Start       int           `yaml:"start"`
	Distances   [][]yaml.Node `yaml:"distances"`
}

// parseDistance reads one matrix entry: a number, null, or a spelling of +Inf.
func parseDistance(value *yaml.Node) (float64, error) {
	if value.Kind != yaml.ScalarNode {
		return 0, fmt.Errorf("%w: line %d: distance must be a scalar", ErrInvalidInstance, value.Line)
	}
	if value.ShortTag() == "!!null" {
		return math.Inf(1), nil
	}
	switch strings.ToLower(strings.TrimSpace(value.Value)) {
	case "inf", "+inf", "infinity", "+infinity", ".inf", "+.inf", "∞":
		return math.Inf(1), nil
	}
	var f float64
	if err := value.Decode(&f); err != nil {
		return 0, fmt.Errorf("%w: line %d: %v", ErrInvalidInstance, value.Line, err)
	}

	return f, nil
}

// Parse decodes an instance document.
//
// Errors: ErrInvalidInstance (wrapping the decoder or matrix error).
func Parse(data []byte) (*Instance, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInstance, err)
	}

	n := len(doc.Distances)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 rows, got %d", ErrInvalidInstance, n)
	}
	rows := make([][]float64, n)
	for i, row := range doc.Distances {
		if len(row) != n {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrInvalidInstance, i, len(row), n)
		}
		rows[i] = make([]float64, n)
		for j := range row {
			v, err := parseDistance(&row[j])
			if err != nil {
				return nil, err
			}
			rows[i][j] = v
		}
	}
	dist, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInstance, err)
	}
	if doc.Start < 0 || doc.Start >= n {
		return nil, fmt.Errorf("%w: start %d outside [0,%d)", ErrInvalidInstance, doc.Start, n)
	}

	return &Instance{
		Name:        doc.Name,
		Description: doc.Description,
		Start:       doc.Start,
		Distances:   dist,
	}, nil
}

// Load reads and parses an instance file. A missing name defaults to the
// file's base name without extension.
func Load(file string) (*Instance, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("instance: read %s: %w", file, err)
	}
	in, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	if in.Name == "" {
		base := filepath.Base(file)
		in.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}

	return in, nil
}

// Builtin returns a fresh copy of a built-in instance.
func Builtin(name string) (*Instance, error) {
	data, err := builtinFS.ReadFile("builtin/" + name + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownInstance, name, strings.Join(Names(), ", "))
	}

	return Parse(data)
}

// Names lists the built-in instances in lexical order.
func Names() []string {
	entries, err := builtinFS.ReadDir("builtin")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".yaml"))
	}
	sort.Strings(names)

	return names
}

// Package pointio reads point sets from text, YAML or JSON input and writes
// closest-pair results with a fixed number of decimal digits.
//
// Text input holds one point per line, "x y" or "x,y"; blank lines and lines
// starting with '#' are skipped. YAML input (JSON is accepted as a YAML
// subset) is a sequence whose items are either {x: .., y: ..} mappings or
// [x, y] pairs.
package pointio

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/closestpair"
	"github.com/BrunoGrisci/projeto-e-analise-de-algoritmos/geometry"
)

// Format selects the input decoder.
type Format int

const (
	// FormatAuto sniffs the first non-space byte: '[', '{' or '-' ⇒ YAML, else text.
	FormatAuto Format = iota
	// FormatText is one "x y" / "x,y" pair per line.
	FormatText
	// FormatYAML is a YAML or JSON sequence of points.
	FormatYAML
)

var (
	// ErrEmptyInput indicates the input held no points at all.
	ErrEmptyInput = errors.New("pointio: no points in input")
	// ErrMalformedLine indicates a text line that is not two numbers.
	ErrMalformedLine = errors.New("pointio: malformed point")
	// ErrUnknownFormat indicates an unrecognized format name.
	ErrUnknownFormat = errors.New("pointio: unknown format")
)

// ParseFormat maps "auto", "text"/"txt" and "yaml"/"yml"/"json" to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return FormatAuto, nil
	case "text", "txt":
		return FormatText, nil
	case "yaml", "yml", "json":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("%q: %w", s, ErrUnknownFormat)
}

// FormatFromPath picks a format from the file extension; unknown ⇒ FormatAuto.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return FormatYAML
	case ".txt", ".dat", ".xy":
		return FormatText
	}
	return FormatAuto
}

// Read decodes every point from r.
func Read(r io.Reader, format Format) ([]geometry.Point, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("pointio: read: %w", err)
	}
	if format == FormatAuto {
		format = sniff(data)
	}

	var pts []geometry.Point
	switch format {
	case FormatYAML:
		pts, err = decodeYAML(data)
	case FormatText:
		pts, err = decodeText(data)
	default:
		return nil, fmt.Errorf("format %d: %w", format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	if len(pts) == 0 {
		return nil, ErrEmptyInput
	}

	return pts, nil
}

func sniff(data []byte) Format {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 {
		return FormatText
	}
	switch {
	case trimmed[0] == '[' || trimmed[0] == '{':
		return FormatYAML
	case bytes.HasPrefix(trimmed, []byte("---")):
		return FormatYAML
	case bytes.HasPrefix(trimmed, []byte("- ")) || bytes.HasPrefix(trimmed, []byte("-\t")):
		return FormatYAML
	}
	// Anything else, including "-1.5 2", is a text line.
	return FormatText
}

// yamlPoint accepts either {x: .., y: ..} or [x, y].
type yamlPoint geometry.Point

func (p *yamlPoint) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var xy []float64
		if err := node.Decode(&xy); err != nil {
			return err
		}
		if len(xy) != 2 {
			return fmt.Errorf("line %d: want [x, y], got %d values: %w", node.Line, len(xy), ErrMalformedLine)
		}
		p.X, p.Y = xy[0], xy[1]
		return nil
	case yaml.MappingNode:
		var m struct {
			X *float64 `yaml:"x"`
			Y *float64 `yaml:"y"`
		}
		if err := node.Decode(&m); err != nil {
			return err
		}
		if m.X == nil || m.Y == nil {
			return fmt.Errorf("line %d: want keys x and y: %w", node.Line, ErrMalformedLine)
		}
		p.X, p.Y = *m.X, *m.Y
		return nil
	}
	return fmt.Errorf("line %d: unexpected YAML node: %w", node.Line, ErrMalformedLine)
}

// yamlDoc accepts a bare sequence or a mapping with a "points" key.
type yamlDoc struct {
	Points []yamlPoint `yaml:"points"`
}

func decodeYAML(data []byte) ([]geometry.Point, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("pointio: yaml: %w", err)
	}
	if len(root.Content) == 0 {
		return nil, nil
	}

	var raw []yamlPoint
	doc := root.Content[0]
	switch doc.Kind {
	case yaml.SequenceNode:
		if err := doc.Decode(&raw); err != nil {
			return nil, fmt.Errorf("pointio: yaml: %w", err)
		}
	case yaml.MappingNode:
		var d yamlDoc
		if err := doc.Decode(&d); err != nil {
			return nil, fmt.Errorf("pointio: yaml: %w", err)
		}
		raw = d.Points
	default:
		return nil, fmt.Errorf("pointio: yaml: top level must be a sequence: %w", ErrMalformedLine)
	}

	pts := make([]geometry.Point, len(raw))
	for i, p := range raw {
		pts[i] = geometry.Point(p)
	}

	return pts, nil
}

func decodeText(data []byte) ([]geometry.Point, error) {
	var pts []geometry.Point
	sc := bufio.NewScanner(bytes.NewReader(data))
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t' || r == ';'
		})
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, line, ErrMalformedLine)
		}
		x, errX := strconv.ParseFloat(fields[0], 64)
		y, errY := strconv.ParseFloat(fields[1], 64)
		if errX != nil || errY != nil {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, line, ErrMalformedLine)
		}
		pts = append(pts, geometry.Point{X: x, Y: y})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("pointio: scan: %w", err)
	}

	return pts, nil
}

// WriteResult prints the distance with precision decimals. With withPair the
// realizing points follow on the same line.
func WriteResult(w io.Writer, res closestpair.Result, precision int, withPair bool) error {
	var err error
	if withPair {
		p := res.Pair.Normalize()
		_, err = fmt.Fprintf(w, "%.*f %v %v\n", precision, res.Distance, p.A, p.B)
	} else {
		_, err = fmt.Fprintf(w, "%.*f\n", precision, res.Distance)
	}

	return err
}

package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridkit/gridrect"
	"github.com/katalvlaran/gridkit/internal/config"
)

// Input formats for --input-format.
const (
	inputAuto = "auto"
	inputText = "text"
	inputYAML = "yaml"
)

// loadGrid reads the grid from args[0], or from stdin when args is empty or "-".
// It returns the grid and a name for the source.
func loadGrid(stdin io.Reader, args []string, format string) (*gridrect.Dense, string, error) {
	source := "stdin"
	var (
		data []byte
		err  error
	)
	if len(args) > 0 && args[0] != "-" {
		source = args[0]
		data, err = os.ReadFile(source)
		if format == inputAuto && hasYAMLExt(source) {
			format = inputYAML
		}
	} else {
		data, err = io.ReadAll(stdin)
	}
	if err != nil {
		return nil, source, fmt.Errorf("read %s: %w", source, err)
	}

	g, err := parseGrid(data, format)
	if err != nil {
		return nil, source, fmt.Errorf("%s: %w", source, err)
	}
	return g, source, nil
}

// parseGrid decodes data as a text or YAML grid. In auto mode, input whose
// first character is '[' or whose first content line opens a rows key is YAML
// (JSON arrays included); anything else is text. A bare "- " list is also
// valid text, so it is YAML only by file extension or --input-format.
func parseGrid(data []byte, format string) (*gridrect.Dense, error) {
	if format == inputAuto {
		format = inputText
		if looksYAML(data) {
			format = inputYAML
		}
	}
	switch format {
	case inputText:
		return gridrect.Parse(bytes.NewReader(data))
	case inputYAML:
		return parseYAMLGrid(data)
	}
	return nil, fmt.Errorf("unknown input format %q", format)
}

func hasYAMLExt(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

// looksYAML skips blank lines and leading YAML comments, then inspects the
// first remaining line only.
func looksYAML(data []byte) bool {
	for _, line := range bytes.Split(data, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}
		if line[0] == '#' && (len(line) == 1 || line[1] == ' ') {
			continue
		}
		return line[0] == '[' || bytes.HasPrefix(line, []byte("rows:"))
	}
	return false
}

// parseYAMLGrid accepts either a bare list of rows or a mapping with a rows
// key. Every row must itself be a list; null or scalar rows are errors.
func parseYAMLGrid(data []byte) (*gridrect.Dense, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("parse yaml grid: %w", err)
	}
	if len(root.Content) == 0 {
		return gridrect.NewDense(nil)
	}

	node := root.Content[0]
	switch node.Kind {
	case yaml.SequenceNode:
	case yaml.MappingNode:
		node = mappingValue(node, "rows")
		if node == nil {
			return nil, errors.New("yaml grid mapping has no rows key")
		}
		if node.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: rows must be a list", node.Line)
		}
	default:
		return nil, errors.New("yaml grid must be a list of rows or a mapping with a rows key")
	}
	for i, row := range node.Content {
		if row.Kind != yaml.SequenceNode {
			return nil, fmt.Errorf("line %d: row %d is not a list", row.Line, i)
		}
	}

	var rows [][]int
	if err := node.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode rows: %w", err)
	}
	return gridrect.NewDense(rows)
}

// mappingValue returns the value node under key, or nil.
func mappingValue(m *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return m.Content[i+1]
		}
	}
	return nil
}

type rectDoc struct {
	X      int `json:"x" yaml:"x"`
	Y      int `json:"y" yaml:"y"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

type pointDoc struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

type regionDoc struct {
	Bounds rectDoc  `json:"bounds" yaml:"bounds"`
	Seed   pointDoc `json:"seed" yaml:"seed,flow"`
	Cells  int      `json:"cells" yaml:"cells"`
}

type bridgeDoc struct {
	Cost int        `json:"cost" yaml:"cost"`
	Path []pointDoc `json:"path" yaml:"path"`
}

func toRectDoc(r gridrect.Rect) rectDoc {
	return rectDoc{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

func writeRects(w io.Writer, format string, rects []gridrect.Rect) error {
	if format == config.FormatText {
		for _, r := range rects {
			if _, err := fmt.Fprintln(w, r); err != nil {
				return err
			}
		}
		return nil
	}
	docs := make([]rectDoc, len(rects))
	for i, r := range rects {
		docs[i] = toRectDoc(r)
	}
	return encode(w, format, docs)
}

func writeRegions(w io.Writer, format string, regions []gridrect.Region) error {
	if format == config.FormatText {
		for i, r := range regions {
			if _, err := fmt.Fprintf(w, "%d\t%v\tseed=(%d,%d)\tcells=%d\n", i, r.Bounds, r.Seed.X, r.Seed.Y, r.Cells); err != nil {
				return err
			}
		}
		return nil
	}
	docs := make([]regionDoc, len(regions))
	for i, r := range regions {
		docs[i] = regionDoc{
			Bounds: toRectDoc(r.Bounds),
			Seed:   pointDoc{X: r.Seed.X, Y: r.Seed.Y},
			Cells:  r.Cells,
		}
	}
	return encode(w, format, docs)
}

func writeBridge(w io.Writer, format string, path []gridrect.Point, cost int) error {
	doc := bridgeDoc{Cost: cost, Path: make([]pointDoc, len(path))}
	for i, p := range path {
		doc.Path[i] = pointDoc{X: p.X, Y: p.Y}
	}
	if format == config.FormatText {
		if _, err := fmt.Fprintf(w, "cost=%d\n", cost); err != nil {
			return err
		}
		for _, p := range path {
			if _, err := fmt.Fprintf(w, "(%d,%d)\n", p.X, p.Y); err != nil {
				return err
			}
		}
		return nil
	}
	return encode(w, format, doc)
}

// encode writes v as indented JSON or as YAML.
func encode(w io.Writer, format string, v any) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

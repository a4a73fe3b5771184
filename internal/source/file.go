package source

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Akashdeep-Patra/dgv/internal/grid"
	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
	"github.com/pelletier/go-toml/v2"
	"go.yaml.in/yaml/v3"
)

// ErrUnsupportedFormat is returned for files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported dataset format")

// FileService reads a dataset from a JSON, YAML, TOML or CSV file. The file
// is read on every call; wrap it in a CachedService to share reads.
type FileService struct {
	name      string
	path      string
	itemsPath string
}

var _ Service = (*FileService)(nil)

// NewFileService opens the dataset at path. itemsPath is an optional JSONPath
// expression selecting the item objects inside a JSON, YAML or TOML document;
// without it the document must be a list of items or hold one under "items".
func NewFileService(name, path, itemsPath string) (*FileService, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(abs), filepath.Ext(abs))
	}
	if itemsPath != "" {
		if _, err := jp.ParseString(itemsPath); err != nil {
			return nil, fmt.Errorf("parsing items path %q: %w", itemsPath, err)
		}
	}
	return &FileService{name: name, path: abs, itemsPath: itemsPath}, nil
}

// Name returns the dataset label.
func (s *FileService) Name() string { return s.name }

// Path returns the absolute dataset path.
func (s *FileService) Path() string { return s.path }

// Items reads and decodes the dataset file.
func (s *FileService) Items() ([]grid.Item, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset %s: %w", s.path, err)
	}
	items, err := Decode(filepath.Ext(s.path), data, s.itemsPath)
	if err != nil {
		return nil, fmt.Errorf("decoding dataset %s: %w", s.path, err)
	}
	return items, nil
}

// Decode parses data according to the file extension ext.
func Decode(ext string, data []byte, itemsPath string) ([]grid.Item, error) {
	switch strings.ToLower(ext) {
	case ".json":
		tree, err := oj.Parse(data)
		if err != nil {
			return nil, err
		}
		return fromTree(tree, itemsPath)
	case ".yaml", ".yml":
		var tree any
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		return fromTree(tree, itemsPath)
	case ".toml":
		var tree map[string]any
		if err := toml.Unmarshal(data, &tree); err != nil {
			return nil, err
		}
		return fromTree(tree, itemsPath)
	case ".csv":
		return fromCSV(bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// fromTree turns a generic document into items.
func fromTree(tree any, itemsPath string) ([]grid.Item, error) {
	var nodes []any
	switch {
	case itemsPath != "":
		x, err := jp.ParseString(itemsPath)
		if err != nil {
			return nil, fmt.Errorf("parsing items path %q: %w", itemsPath, err)
		}
		nodes = x.Get(tree)
		// A path that lands on the list itself rather than its elements.
		if len(nodes) == 1 {
			if list, ok := nodes[0].([]any); ok {
				nodes = list
			}
		}
	default:
		switch t := tree.(type) {
		case []any:
			nodes = t
		case map[string]any:
			list, ok := lookup(t, "items").([]any)
			if !ok {
				return nil, errors.New(`document has no "items" list`)
			}
			nodes = list
		case nil:
			return nil, nil
		default:
			return nil, fmt.Errorf("unexpected document root %T", tree)
		}
	}

	items := make([]grid.Item, 0, len(nodes))
	for i, n := range nodes {
		m, ok := n.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("item %d: expected an object, got %T", i, n)
		}
		items = append(items, grid.Item{
			Name:   text(lookup(m, "name")),
			Device: text(lookup(m, "device")),
			Path:   text(lookup(m, "path")),
			Status: text(lookup(m, "status")),
		})
	}
	return items, nil
}

// lookup finds key in m ignoring case.
func lookup(m map[string]any, key string) any {
	if v, ok := m[key]; ok {
		return v
	}
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}

func text(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// fromCSV reads a header row naming the columns followed by one item per
// record. Unknown columns are ignored.
func fromCSV(r io.Reader) ([]grid.Item, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return rec[i]
	}

	var items []grid.Item
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		items = append(items, grid.Item{
			Name:   field(rec, "name"),
			Device: field(rec, "device"),
			Path:   field(rec, "path"),
			Status: field(rec, "status"),
		})
	}
	return items, nil
}

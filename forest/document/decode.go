package document

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownFormat = errors.New("document: unknown format")
	ErrEmptyDocument = errors.New("document: empty document")
)

type Format int

const (
	FormatJSON Format = iota
	FormatYAML
	FormatCBOR
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	case FormatCBOR:
		return "cbor"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ParseFormat accepts the names returned by Format.String, case insensitively.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json", "jsonc":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "cbor":
		return FormatCBOR, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return 0, fmt.Errorf("%w: %s has no extension", ErrUnknownFormat, path)
	}
	return ParseFormat(ext)
}

var decMode cbor.DecMode

func init() {
	var err error
	decMode, err = cbor.DecOptions{
		DupMapKey: cbor.DupMapKeyEnforcedAPF,
	}.DecMode()
	if err != nil {
		panic("document: CBOR decoder initialization failed: " + err.Error())
	}
}

// Decode parses a document holding either a single node or an array of nodes
// and returns the nodes in document order.
func Decode(data []byte, format Format) ([]*Node, error) {
	switch format {
	case FormatJSON:
		return decodeJSON(data)
	case FormatYAML:
		return decodeYAML(data)
	case FormatCBOR:
		return decodeCBOR(data)
	}
	return nil, fmt.Errorf("%w: %v", ErrUnknownFormat, format)
}

// ReadFile reads and decodes the document at path, choosing the format from
// the extension.
func ReadFile(path string) ([]*Node, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	nodes, err := Decode(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return nodes, nil
}

func decodeJSON(data []byte) ([]*Node, error) {
	stripped := bytes.TrimSpace(jsonc.ToJSON(data))
	if len(stripped) == 0 {
		return nil, ErrEmptyDocument
	}

	if stripped[0] == '[' {
		var nodes []*Node
		if err := json.Unmarshal(stripped, &nodes); err != nil {
			return nil, fmt.Errorf("parsing json forest: %w", err)
		}
		return nodes, nil
	}
	var node Node
	if err := json.Unmarshal(stripped, &node); err != nil {
		return nil, fmt.Errorf("parsing json node: %w", err)
	}
	return []*Node{&node}, nil
}

func decodeYAML(data []byte) ([]*Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing yaml: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}

	top := doc.Content[0]
	if top.Kind == yaml.SequenceNode {
		var nodes []*Node
		if err := top.Decode(&nodes); err != nil {
			return nil, fmt.Errorf("parsing yaml forest: %w", err)
		}
		return nodes, nil
	}
	var node Node
	if err := top.Decode(&node); err != nil {
		return nil, fmt.Errorf("parsing yaml node: %w", err)
	}
	return []*Node{&node}, nil
}

// cborMajorArray is the major type of a CBOR array in the top three bits of
// the initial byte.
const cborMajorArray = 4

func decodeCBOR(data []byte) ([]*Node, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDocument
	}

	if data[0]>>5 == cborMajorArray {
		var nodes []*Node
		if err := decMode.Unmarshal(data, &nodes); err != nil {
			return nil, fmt.Errorf("parsing cbor forest: %w", err)
		}
		return nodes, nil
	}
	var node Node
	if err := decMode.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parsing cbor node: %w", err)
	}
	return []*Node{&node}, nil
}

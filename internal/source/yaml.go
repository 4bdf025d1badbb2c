package source

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the mapping form of a YAML or JSON sample file.
type document struct {
	Values []int `yaml:"values"`
}

// ReadYAML reads samples from a YAML or JSON document that is either a list
// of integers or a mapping with a values list.
func ReadYAML(name string, r io.Reader) ([]int, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &ParseError{Source: name, Err: err}
	}
	if len(root.Content) == 0 {
		return nil, nil
	}
	node := root.Content[0]

	var out []int
	switch node.Kind {
	case yaml.SequenceNode:
		err = node.Decode(&out)
	case yaml.MappingNode:
		var doc document
		err = node.Decode(&doc)
		out = doc.Values
	default:
		return nil, &ParseError{Source: name, Line: node.Line, Err: fmt.Errorf("expected a list of samples or a mapping with values, got %s", node.Tag)}
	}
	if err != nil {
		return nil, &ParseError{Source: name, Line: node.Line, Err: err}
	}
	return out, nil
}

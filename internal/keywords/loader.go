package keywords

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const currentVersion = "1"

// file is the on-disk shape of a dictionary set.
type file struct {
	Version string      `yaml:"version,omitempty"`
	Parent  *Dictionary `yaml:"parent,omitempty"`
	Student *Dictionary `yaml:"student,omitempty"`
	Payment *Dictionary `yaml:"payment,omitempty"`
}

// LoadFile loads, parses and validates a YAML dictionary file.
func LoadFile(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Set{}, fmt.Errorf("failed to read dictionary file %s: %w", path, err)
	}

	return Parse(data)
}

// Parse parses YAML data into a validated Set.
func Parse(data []byte) (Set, error) {
	var f file

	if err := yaml.Unmarshal(data, &f); err != nil {
		return Set{}, fmt.Errorf("failed to parse dictionary YAML: %w", err)
	}

	set := applyDefaults(&f)

	if err := Validate(set); err != nil {
		return Set{}, err
	}

	return set, nil
}

// applyDefaults fills in the version and any section missing from the file.
func applyDefaults(f *file) Set {
	defaults := Default()

	set := Set{Version: f.Version}
	if set.Version == "" {
		set.Version = currentVersion
	}

	set.Parent = pick(f.Parent, defaults.Parent)
	set.Student = pick(f.Student, defaults.Student)
	set.Payment = pick(f.Payment, defaults.Payment)

	return set
}

func pick(d *Dictionary, fallback Dictionary) Dictionary {
	if d == nil {
		return fallback
	}

	out := d.Clone()
	out.Entity = fallback.Entity

	return out
}

// Marshal serializes a Set to YAML.
func Marshal(s Set) ([]byte, error) {
	return yaml.Marshal(file{
		Version: s.Version,
		Parent:  &s.Parent,
		Student: &s.Student,
		Payment: &s.Payment,
	})
}

// UnmarshalYAML decodes an ordered field → synonyms mapping.
// Each value may be a single string or a list of strings.
func (d *Dictionary) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: expected a mapping of field to synonyms, got %v", node.Line, kindName(node.Kind))
	}

	entries := make([]Entry, 0, len(node.Content)/2)

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]

		var field string
		if err := keyNode.Decode(&field); err != nil {
			return fmt.Errorf("line %d: invalid field name: %w", keyNode.Line, err)
		}

		synonyms, err := decodeSynonyms(valNode)
		if err != nil {
			return fmt.Errorf("field %q: %w", field, err)
		}

		entries = append(entries, Entry{Field: field, Synonyms: synonyms})
	}

	d.Entries = entries

	return nil
}

// MarshalYAML encodes the dictionary as an ordered mapping.
func (d Dictionary) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, e := range d.Entries {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: e.Field}
		val := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}

		for _, s := range e.Synonyms {
			val.Content = append(val.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
		}

		node.Content = append(node.Content, key, val)
	}

	return node, nil
}

func decodeSynonyms(node *yaml.Node) ([]string, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return nil, err
		}

		if s == "" {
			return []string{}, nil
		}

		return []string{s}, nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return nil, err
		}

		return arr, nil

	default:
		return nil, fmt.Errorf("line %d: expected string or array, got %v", node.Line, kindName(node.Kind))
	}
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}


package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// stringOrList decodes a YAML scalar or sequence of scalars.
type stringOrList struct {
	values []string
	set    bool
}

func (s *stringOrList) UnmarshalYAML(node *yaml.Node) error {
	s.set = true
	switch node.Kind {
	case yaml.ScalarNode:
		s.values = []string{node.Value}
		return nil
	case yaml.SequenceNode:
		s.values = make([]string, 0, len(node.Content))
		for i, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: syntax[%d]: want string", item.Line, i)
			}
			s.values = append(s.values, item.Value)
		}
		return nil
	}
	return fmt.Errorf("line %d: syntax: want string or list of strings", node.Line)
}

type yamlLib struct {
	ID     string       `yaml:"id"`
	Format string       `yaml:"format"`
	Syntax stringOrList `yaml:"syntax"`
	Target string       `yaml:"target"`
	line   int
}

func (l *yamlLib) UnmarshalYAML(node *yaml.Node) error {
	type plain yamlLib
	if err := node.Decode((*plain)(l)); err != nil {
		return err
	}
	l.line = node.Line
	return nil
}

type yamlConfig struct {
	Syntax stringOrList `yaml:"syntax"`
	Target string       `yaml:"target"`
	Lib    []yamlLib    `yaml:"lib"`
}

// ParseYAML parses YAML config content. path is used in error messages.
func ParseYAML(path string, data []byte) (*Config, error) {
	var doc yamlConfig
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &Error{Path: path, Message: fmt.Sprintf("failed to parse YAML: %v", err)}
	}

	d := defaults{
		syntax:    doc.Syntax.values,
		hasSyntax: doc.Syntax.set,
		target:    doc.Target,
	}
	raws := make([]rawLib, 0, len(doc.Lib))
	for _, l := range doc.Lib {
		raws = append(raws, rawLib{
			id:        l.ID,
			format:    l.Format,
			syntax:    l.Syntax.values,
			hasSyntax: l.Syntax.set,
			target:    l.Target,
			line:      l.line,
		})
	}
	return assemble(path, d, raws)
}

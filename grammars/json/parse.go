package json

import (
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/clarete/parsing"
)

// Complete is Document followed by the end of the input
var Complete = parsing.SeqIgnoreRight(Document, parsing.EndOfInput[rune]()).Named("complete-document")

// Parse reads a whole JSON document
func Parse(input string) (Value, error) {
	return ParseWith(input, nil)
}

// ParseWith is Parse honoring the `parse.*` settings of cfg.  The
// whole input is always required to be consumed.
func ParseWith(input string, cfg *parsing.Config) (Value, error) {
	res := parsing.ParseString(Complete, input, cfg)
	if !res.IsSuccess() {
		return nil, res.Err()
	}
	return res.Value, nil
}

// ToYAML converts a value into a YAML node.  Object members keep
// their order.
func ToYAML(v Value) *yaml.Node {
	switch n := v.(type) {
	case *ValueNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case *ValueBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(n.Value)}
	case *ValueNumber:
		tag := "!!float"
		if _, err := strconv.ParseInt(n.Raw, 10, 64); err == nil {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: n.Raw}
	case *ValueString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: n.Value}
	case *ValueArray:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range n.Items {
			node.Content = append(node.Content, ToYAML(item))
		}
		return node
	case *ValueObject:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, m := range n.Members {
			key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: m.Key}
			node.Content = append(node.Content, key, ToYAML(m.Value))
		}
		return node
	default:
		panic("unknown json value")
	}
}

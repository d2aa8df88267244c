package question

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// AnswerKey is the normalized correct answer of a question.
// Bank files may spell it as a single string or as a list; both decode to a list.
type AnswerKey []string

// Contains reports whether value is one of the key entries.
func (key AnswerKey) Contains(value string) bool {
	for _, entry := range key {
		if entry == value {
			return true
		}
	}
	return false
}

// UnmarshalJSON accepts a string, a list of strings, or null.
func (key *AnswerKey) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		*key = nil
		return nil
	}
	switch trimmed[0] {
	case '"':
		var single string
		if err := json.Unmarshal(trimmed, &single); err != nil {
			return err
		}
		*key = AnswerKey{single}
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(trimmed, &list); err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		*key = AnswerKey(list)
		return nil
	default:
		return fmt.Errorf("answer: expected string or list of strings, got %s", string(trimmed))
	}
}

// UnmarshalYAML accepts a scalar or a sequence of scalars.
func (key *AnswerKey) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*key = nil
			return nil
		}
		*key = AnswerKey{node.Value}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := node.Decode(&list); err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		*key = AnswerKey(list)
		return nil
	default:
		return fmt.Errorf("answer: line %d: expected string or list of strings", node.Line)
	}
}

package model

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Series is an exogenous per-period input.
//
// In YAML and JSON a series may be written either as a list of numbers or as a
// single number; a single number decodes to a one-element series, which the
// engine broadcasts over the horizon. An absent series is nil.
type Series []float64

// Clone returns an independent copy of s (nil stays nil).
func (s Series) Clone() Series {
	if s == nil {
		return nil
	}
	out := make(Series, len(s))
	copy(out, s)
	return out
}

func (s *Series) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!null" {
			*s = nil
			return nil
		}
		var v float64
		if err := node.Decode(&v); err != nil {
			return fmt.Errorf("series line %d: %w", node.Line, err)
		}
		*s = Series{v}
		return nil
	case yaml.SequenceNode:
		var vs []float64
		if err := node.Decode(&vs); err != nil {
			return fmt.Errorf("series line %d: %w", node.Line, err)
		}
		*s = Series(vs)
		return nil
	default:
		return fmt.Errorf("series line %d: expected a number or a list of numbers", node.Line)
	}
}

func (s *Series) UnmarshalJSON(raw []byte) error {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		*s = nil
		return nil
	}
	if raw[0] == '[' {
		var vs []float64
		if err := json.Unmarshal(raw, &vs); err != nil {
			return fmt.Errorf("series: %w", err)
		}
		*s = Series(vs)
		return nil
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("series: expected a number or a list of numbers: %w", err)
	}
	*s = Series{v}
	return nil
}

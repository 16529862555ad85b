package config

import (
	"os"

	apperrors "github.com/nconklindev/hitlisten/internal/errors"
	"github.com/nconklindev/hitlisten/internal/types"

	"gopkg.in/yaml.v3"
)

// Mapping is an ordered, possibly multi-stage aggregation mapping.
//
// The file is either a single YAML mapping of group to bucket, or
//
//	keep_empty: true
//	stages:
//	  - {group: bucket, ...}
//	  - {bucket: final bucket, ...}
type Mapping struct {
	Stages    []types.AggregationMapping
	KeepEmpty bool
}

// LoadMapping reads a mapping file. found is false when the file does not exist.
func LoadMapping(path string) (m Mapping, found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Mapping{}, false, nil
	}
	if err != nil {
		return Mapping{}, false, apperrors.Wrapf(err, "read mapping %s", path)
	}

	m, err = ParseMapping(data)
	if err != nil {
		return Mapping{}, true, apperrors.Wrapf(err, "parse mapping %s", path)
	}
	return m, true, nil
}

// ParseMapping decodes mapping YAML, preserving key order.
func ParseMapping(data []byte) (Mapping, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Mapping{}, apperrors.WithCode(apperrors.CodeConfigInvalid, err, "invalid mapping yaml")
	}
	if len(doc.Content) == 0 {
		return Mapping{}, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return Mapping{}, apperrors.ConfigInvalid("mapping must be a yaml mapping (line %d)", root.Line)
	}

	// only a list under "stages" marks the staged form; otherwise "stages"
	// and "keep_empty" are ordinary group names
	stages := valueOf(root, "stages")
	if stages == nil || stages.Kind != yaml.SequenceNode {
		stage, err := parseStage(root)
		if err != nil {
			return Mapping{}, err
		}
		return Mapping{Stages: []types.AggregationMapping{stage}}, nil
	}

	var m Mapping
	if keep := valueOf(root, "keep_empty"); keep != nil {
		if err := keep.Decode(&m.KeepEmpty); err != nil {
			return Mapping{}, apperrors.WithCode(apperrors.CodeConfigInvalid, err, "keep_empty must be a boolean")
		}
	}
	for _, node := range stages.Content {
		stage, err := parseStage(node)
		if err != nil {
			return Mapping{}, err
		}
		m.Stages = append(m.Stages, stage)
	}
	return m, nil
}

func parseStage(node *yaml.Node) (types.AggregationMapping, error) {
	if node.Kind != yaml.MappingNode {
		return nil, apperrors.ConfigInvalid("stage must be a mapping (line %d)", node.Line)
	}

	seen := make(map[string]bool, len(node.Content)/2)
	stage := make(types.AggregationMapping, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		k, v := node.Content[i], node.Content[i+1]
		if k.Kind != yaml.ScalarNode || v.Kind != yaml.ScalarNode {
			return nil, apperrors.ConfigInvalid("group and bucket must be plain strings (line %d)", k.Line)
		}
		if seen[k.Value] {
			return nil, apperrors.ConfigInvalid("group %q mapped twice (line %d)", k.Value, k.Line)
		}
		seen[k.Value] = true
		stage = append(stage, types.MappingEntry{Group: k.Value, Bucket: v.Value})
	}
	return stage, nil
}

func valueOf(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// Package seed loads a background knowledge base from YAML.
//
// A seed file lists nodes. Each node has an id, optional rdf types, literal
// properties and links to other nodes:
//
//	nodes:
//	  - id: Rice_Blast
//	    type: Disease
//	    props:
//	      hasName: Rice Blast
//	    links:
//	      hasControlMethods: [CM_Tricyclazole, CM_FieldSanitation]
package seed

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"paddy-kbs-be/internal/entity"
	"paddy-kbs-be/internal/repository/contract"
)

// Values is a scalar or a list of scalars.
type Values []string

func (v *Values) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*v = Values{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(Values, 0, len(node.Content))
		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: list items must be scalars", item.Line)
			}
			out = append(out, item.Value)
		}
		*v = out
		return nil
	default:
		return fmt.Errorf("line %d: expected a scalar or a list", node.Line)
	}
}

type Node struct {
	Id    string            `yaml:"id"`
	Type  Values            `yaml:"type"`
	Props map[string]Values `yaml:"props"`
	Links map[string]Values `yaml:"links"`
}

type File struct {
	Nodes []Node `yaml:"nodes"`
}

func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}

	seen := make(map[string]bool, len(f.Nodes))
	for i, n := range f.Nodes {
		if strings.TrimSpace(n.Id) == "" {
			return nil, fmt.Errorf("parse seed: node %d has no id", i)
		}
		if seen[n.Id] {
			return nil, fmt.Errorf("parse seed: duplicate node %q", n.Id)
		}
		seen[n.Id] = true
	}
	return &f, nil
}

func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed %s: %w", path, err)
	}
	return Parse(data)
}

// Facts renders every node into the background scope, in file order with
// predicates sorted within a node.
func (f *File) Facts() []entity.Fact {
	var facts []entity.Fact
	for _, n := range f.Nodes {
		for _, t := range n.Type {
			facts = append(facts, entity.Link(entity.BackgroundScope, n.Id, entity.PredType, t))
		}
		for _, p := range sortedKeys(n.Props) {
			for _, v := range n.Props[p] {
				facts = append(facts, entity.Literal(entity.BackgroundScope, n.Id, p, v))
			}
		}
		for _, p := range sortedKeys(n.Links) {
			for _, o := range n.Links[p] {
				facts = append(facts, entity.Link(entity.BackgroundScope, n.Id, p, o))
			}
		}
	}
	return facts
}

// Apply writes the seed in one statement. With replace set, the whole
// background scope is retracted first; session scopes are left alone.
func Apply(ctx context.Context, store contract.FactStore, f *File, replace bool) (int, error) {
	stmt := entity.Statement{Assert: f.Facts()}
	if replace {
		stmt.Retract = []entity.Pattern{{Scope: entity.BackgroundScope}}
	}
	if err := store.Update(ctx, stmt); err != nil {
		return 0, fmt.Errorf("apply seed: %w", err)
	}
	return len(stmt.Assert), nil
}

func sortedKeys(m map[string]Values) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

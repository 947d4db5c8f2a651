// Package tree implements the condition-driven decision tree: node model,
// condition parsing, and the bounded, memoized traversal.
package tree

import (
	"encoding/json"
	"fmt"

	"github.com/manuelguarniz/project-nlp-simplified/internal/domain"
	apperrors "github.com/manuelguarniz/project-nlp-simplified/internal/errors"
)

// RootID is the fixed traversal entry point.
const RootID = "root"

// Node is the closed set of tree node variants. Only leaves carry the final
// score distribution; only decision nodes carry a condition and branches.
// Both keep keywords and scores for path provenance.
type Node interface {
	ID() string
	Depth() int
	Keywords() []string
	Scores() domain.Scores
	node()
}

// DecisionNode branches on a condition. A nil Cond means the node falls
// through its "default" branch ("true" when no default exists). Root nodes
// are decision nodes with Root set.
type DecisionNode struct {
	NodeID      string
	Cond        Condition
	RawCond     string
	Branches    map[string]string
	NodeScores  domain.Scores
	NodeKeyword []string
	Description string
	NodeDepth   int
	Root        bool
}

func (n *DecisionNode) ID() string            { return n.NodeID }
func (n *DecisionNode) Depth() int            { return n.NodeDepth }
func (n *DecisionNode) Keywords() []string    { return n.NodeKeyword }
func (n *DecisionNode) Scores() domain.Scores { return n.NodeScores }
func (n *DecisionNode) node()                 {}

// LeafNode terminates a traversal with its base score distribution.
type LeafNode struct {
	NodeID      string
	NodeScores  domain.Scores
	NodeKeyword []string
	Description string
	NodeDepth   int
}

func (n *LeafNode) ID() string            { return n.NodeID }
func (n *LeafNode) Depth() int            { return n.NodeDepth }
func (n *LeafNode) Keywords() []string    { return n.NodeKeyword }
func (n *LeafNode) Scores() domain.Scores { return n.NodeScores }
func (n *LeafNode) node()                 {}

// Tree is an immutable decision tree. Branch targets are resolved lazily
// during traversal; a dangling reference is a runtime error, not a build error.
type Tree struct {
	nodes map[string]Node
}

// Info summarizes the tree structure. CacheSize is filled in by the searcher.
type Info struct {
	TotalNodes    int `json:"total_nodes"`
	LeafNodes     int `json:"leaf_nodes"`
	DecisionNodes int `json:"decision_nodes"`
	MaxDepth      int `json:"max_depth"`
	CacheSize     int `json:"cache_size"`
}

// Lookup returns the node with the given id.
func (t *Tree) Lookup(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Info reports structural counts. Root nodes are counted in TotalNodes only,
// matching the decision/leaf split of the source format.
func (t *Tree) Info() Info {
	info := Info{TotalNodes: len(t.nodes)}
	for _, n := range t.nodes {
		switch v := n.(type) {
		case *LeafNode:
			info.LeafNodes++
		case *DecisionNode:
			if !v.Root {
				info.DecisionNodes++
			}
		}
		if n.Depth() > info.MaxDepth {
			info.MaxDepth = n.Depth()
		}
	}
	return info
}

// nodeDoc is the JSON wire shape of one node definition.
type nodeDoc struct {
	Condition       *string            `json:"condition"`
	Branches        map[string]string  `json:"branches"`
	SentimentScores map[string]float64 `json:"sentiment_scores"`
	Keywords        []string           `json:"keywords"`
	Description     string             `json:"description"`
	NodeType        string             `json:"node_type"`
	Depth           int                `json:"depth"`
	ParentID        *string            `json:"parent_id"`
	ChildrenIDs     []string           `json:"children_ids"`
}

// Parse decodes a tree from its JSON document: a mapping from node id to node
// definition. Conditions are parsed eagerly, so a malformed condition fails
// here rather than mid-traversal. The tree must contain exactly one root node.
func Parse(data []byte) (*Tree, error) {
	var docs map[string]nodeDoc
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, apperrors.Configuration("failed to parse decision tree", err)
	}
	return Build(docs)
}

// Build constructs a Tree from decoded node documents.
func Build(docs map[string]nodeDoc) (*Tree, error) {
	nodes := make(map[string]Node, len(docs))
	rootCount := 0

	for id, doc := range docs {
		scores, err := parseScores(id, doc.SentimentScores)
		if err != nil {
			return nil, err
		}
		keywords := doc.Keywords
		if keywords == nil {
			keywords = []string{}
		}

		switch doc.NodeType {
		case "leaf":
			if len(scores) == 0 {
				return nil, apperrors.Configuration(
					fmt.Sprintf("leaf node %q has no sentiment scores", id), nil)
			}
			nodes[id] = &LeafNode{
				NodeID:      id,
				NodeScores:  scores,
				NodeKeyword: keywords,
				Description: doc.Description,
				NodeDepth:   doc.Depth,
			}
		case "root", "decision", "":
			// Absent node_type defaults to decision, as the source format does.
			var cond Condition
			raw := ""
			if doc.Condition != nil && *doc.Condition != "" {
				raw = *doc.Condition
				parsed, err := ParseCondition(raw)
				if err != nil {
					return nil, err
				}
				cond = parsed
			}
			branches := doc.Branches
			if branches == nil {
				branches = map[string]string{}
			}
			isRoot := doc.NodeType == "root"
			if isRoot {
				rootCount++
			}
			nodes[id] = &DecisionNode{
				NodeID:      id,
				Cond:        cond,
				RawCond:     raw,
				Branches:    branches,
				NodeScores:  scores,
				NodeKeyword: keywords,
				Description: doc.Description,
				NodeDepth:   doc.Depth,
				Root:        isRoot,
			}
		default:
			return nil, apperrors.Configuration(
				fmt.Sprintf("node %q has invalid node_type %q", id, doc.NodeType), nil)
		}
	}

	if rootCount != 1 {
		return nil, apperrors.Configuration(
			fmt.Sprintf("tree must contain exactly one root node, found %d", rootCount), nil)
	}
	if _, ok := nodes[RootID]; !ok {
		return nil, apperrors.Configuration("tree root node must use id \"root\"", nil)
	}

	return &Tree{nodes: nodes}, nil
}

func parseScores(id string, raw map[string]float64) (domain.Scores, error) {
	scores := make(domain.Scores, len(raw))
	for name, score := range raw {
		if score < 0 || score > 1 {
			return nil, apperrors.Configuration(
				fmt.Sprintf("node %q has out-of-range score %v for %s", id, score, name), nil)
		}
		scores[domain.Sentiment(name)] = score
	}
	return scores, nil
}

package recommend

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultModelPath is used when neither a flag nor MATHADV_MODEL is set.
const DefaultModelPath = "artifacts/level_recommender_model.json"

// ModelPathFromEnv returns $MATHADV_MODEL or DefaultModelPath.
func ModelPathFromEnv() string {
	if p := os.Getenv("MATHADV_MODEL"); p != "" {
		return p
	}
	return DefaultModelPath
}

// forestFile is the decoded artifact.
type forestFile struct {
	Version int        `json:"version"`
	Classes []int      `json:"classes"`
	Trees   []treeFile `json:"trees"`
}

type treeFile struct {
	Nodes []nodeFile `json:"nodes"`
}

type nodeFile struct {
	Leaf      *int    `json:"leaf,omitempty"`
	Feature   string  `json:"feature,omitempty"`
	Threshold float64 `json:"threshold,omitempty"`
	Left      int     `json:"left,omitempty"`
	Right     int     `json:"right,omitempty"`
}

// node is a compiled tree node. Leaves have leaf set and no children.
type node struct {
	leaf      bool
	class     int
	feature   string
	threshold float64
	left      int
	right     int
}

// Forest is a majority-vote ensemble of binary decision trees. Each split
// sends a row left when its feature value is <= threshold. It is
// immutable after loading.
type Forest struct {
	classes []int
	trees   [][]node
}

// LoadForest reads a forest artifact from a .json, .yaml or .yml file.
// Every failure is reported as a *ModelUnavailableError.
func LoadForest(path string) (*Forest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ModelUnavailableError{Path: path, Err: fmt.Errorf("read model: %w", err)}
	}
	f, err := ParseForest(data, filepath.Ext(path))
	if err != nil {
		return nil, &ModelUnavailableError{Path: path, Err: err}
	}
	return f, nil
}

// ParseForest decodes, validates and compiles a forest artifact. ext
// selects the decoder: ".yaml"/".yml" use YAML, anything else JSON.
func ParseForest(data []byte, ext string) (*Forest, error) {
	raw, err := normalizeDoc(data, ext)
	if err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse model: %w", err)
	}
	if err := validateForestDoc(doc); err != nil {
		return nil, err
	}

	var ff forestFile
	if err := json.Unmarshal(raw, &ff); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	return compileForest(ff)
}

// normalizeDoc returns the artifact as JSON bytes.
func normalizeDoc(data []byte, ext string) ([]byte, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		var v any
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("parse model yaml: %w", err)
		}
		out, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("convert model yaml: %w", err)
		}
		return out, nil
	default:
		return data, nil
	}
}

// compileForest checks the invariants the schema cannot express and
// builds the in-memory trees.
func compileForest(ff forestFile) (*Forest, error) {
	f := &Forest{classes: slices.Clone(ff.Classes)}
	slices.Sort(f.classes)

	for ti, t := range ff.Trees {
		nodes := make([]node, len(t.Nodes))
		for ni, n := range t.Nodes {
			if n.Leaf != nil {
				if !slices.Contains(f.classes, *n.Leaf) {
					return nil, fmt.Errorf("tree %d node %d: leaf class %d not in classes %v", ti, ni, *n.Leaf, f.classes)
				}
				nodes[ni] = node{leaf: true, class: *n.Leaf}
				continue
			}
			// Children must point forward so every walk terminates.
			for _, child := range []int{n.Left, n.Right} {
				if child <= ni || child >= len(t.Nodes) {
					return nil, fmt.Errorf("tree %d node %d: child index %d out of range (%d, %d)", ti, ni, child, ni, len(t.Nodes))
				}
			}
			nodes[ni] = node{
				feature:   n.Feature,
				threshold: n.Threshold,
				left:      n.Left,
				right:     n.Right,
			}
		}
		f.trees = append(f.trees, nodes)
	}
	return f, nil
}

// Len returns the number of trees.
func (f *Forest) Len() int {
	return len(f.trees)
}

// Predict returns the class with the most tree votes. Ties go to the
// lowest class.
func (f *Forest) Predict(x Features) (int, error) {
	votes := make(map[int]int, len(f.classes))
	for ti, nodes := range f.trees {
		class, err := walk(nodes, x)
		if err != nil {
			return 0, fmt.Errorf("tree %d: %w", ti, err)
		}
		votes[class]++
	}

	best, bestVotes := 0, -1
	for _, c := range f.classes {
		if votes[c] > bestVotes {
			best, bestVotes = c, votes[c]
		}
	}
	return best, nil
}

func walk(nodes []node, x Features) (int, error) {
	i := 0
	for {
		n := nodes[i]
		if n.leaf {
			return n.class, nil
		}
		v, ok := x.Value(n.feature)
		if !ok {
			return 0, fmt.Errorf("unknown feature %q", n.feature)
		}
		if v <= n.threshold {
			i = n.left
		} else {
			i = n.right
		}
	}
}

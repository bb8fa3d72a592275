package model

import "fmt"

// Node is one entry of a flattened CART tree. Leaves have Left and Right set
// to -1 and carry the predicted Class.
type Node struct {
	Feature   int     `json:"feature" yaml:"feature"`
	Threshold float64 `json:"threshold" yaml:"threshold"`
	Left      int     `json:"left" yaml:"left"`
	Right     int     `json:"right" yaml:"right"`
	Class     int     `json:"class" yaml:"class"`
}

func (n Node) leaf() bool {
	return n.Left < 0 && n.Right < 0
}

// Tree walks a decision tree from the root: x[feature] <= threshold goes
// left, otherwise right.
type Tree struct {
	nodes    []Node
	features int
}

func newTree(nodes []Node, features int) (*Tree, error) {
	if len(nodes) == 0 {
		return nil, fmt.Errorf("%w: tree has no nodes", ErrInvalidArtifact)
	}

	for i, n := range nodes {
		if n.leaf() {
			continue
		}
		if n.Left < 0 || n.Right < 0 {
			return nil, fmt.Errorf("%w: node %d has a single child", ErrInvalidArtifact, i)
		}
		// children always follow their parent so every walk terminates
		if n.Left <= i || n.Right <= i || n.Left >= len(nodes) || n.Right >= len(nodes) {
			return nil, fmt.Errorf("%w: node %d has out of order children", ErrInvalidArtifact, i)
		}
		if n.Feature < 0 || n.Feature >= features {
			return nil, fmt.Errorf("%w: node %d splits on feature %d", ErrInvalidArtifact, i, n.Feature)
		}
	}

	return &Tree{nodes: nodes, features: features}, nil
}

func (t *Tree) Predict(x []float64) (int, error) {
	if len(x) != t.features {
		return 0, fmt.Errorf("%w: got %d, model expects %d", ErrDimension, len(x), t.features)
	}

	n := t.nodes[0]
	for !n.leaf() {
		if x[n.Feature] <= n.Threshold {
			n = t.nodes[n.Left]
		} else {
			n = t.nodes[n.Right]
		}
	}
	return n.Class, nil
}

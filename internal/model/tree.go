package model

import (
	"errors"
	"fmt"
	"math"

	"heart-risk-service/internal/core/domain"
)

type TreeParams struct {
	Nodes []TreeNode `json:"nodes"`
}

// TreeNode is one node of a flattened tree. Children always sit after
// their parent; node 0 is the root.
type TreeNode struct {
	FeatureIdx    int       `json:"feature_idx"`
	Threshold     float64   `json:"threshold"`
	LeftChild     int       `json:"left"`
	RightChild    int       `json:"right"`
	IsLeaf        bool      `json:"is_leaf"`
	Probabilities []float64 `json:"probabilities,omitempty"`
}

type decisionTree struct {
	nodes []TreeNode
}

func newDecisionTree(p *TreeParams) (*decisionTree, error) {
	if p == nil || len(p.Nodes) == 0 {
		return nil, errors.New("tree has no nodes")
	}

	for i, node := range p.Nodes {
		if node.IsLeaf {
			if len(node.Probabilities) != 2 {
				return nil, fmt.Errorf("leaf %d has %d probabilities, want 2", i, len(node.Probabilities))
			}
			if sum := node.Probabilities[0] + node.Probabilities[1]; math.Abs(sum-1) > 1e-6 {
				return nil, fmt.Errorf("leaf %d probabilities sum to %v", i, sum)
			}
			continue
		}
		if node.FeatureIdx < 0 || node.FeatureIdx >= domain.FeatureCount {
			return nil, fmt.Errorf("node %d splits on column %d", i, node.FeatureIdx)
		}
		for _, child := range []int{node.LeftChild, node.RightChild} {
			if child <= i || child >= len(p.Nodes) {
				return nil, fmt.Errorf("node %d has invalid child %d", i, child)
			}
		}
	}

	nodes := make([]TreeNode, len(p.Nodes))
	copy(nodes, p.Nodes)
	return &decisionTree{nodes: nodes}, nil
}

func (t *decisionTree) probabilities(x []float64) ([]float64, error) {
	idx := 0
	for {
		node := t.nodes[idx]
		if node.IsLeaf {
			return []float64{node.Probabilities[0], node.Probabilities[1]}, nil
		}
		if x[node.FeatureIdx] <= node.Threshold {
			idx = node.LeftChild
		} else {
			idx = node.RightChild
		}
	}
}

/*
 * Copyright 2023 the Decision Forests Authors.
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     https://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package forest defines the immutable decision-forest data model and the
// reader that builds it from a parsed PMML document. Trees are strictly
// binary: every internal node tests one decision and owns a negative
// (default) and a positive subtree. A built forest is never mutated and may
// be read concurrently without synchronization.
package forest

import "fmt"

// TreeNode is one node of a decision tree. The variant set is closed: a
// TreeNode is either a *DecisionNode or a *TerminalNode.
type TreeNode interface {
	isTreeNode()
}

// DecisionNode is an internal node: a decision and exactly two children.
type DecisionNode struct {
	Decision Decision
	// Negative is the branch taken when the decision does not hold. It is
	// also the default branch of the node in the source format.
	Negative TreeNode
	// Positive is the branch taken when the decision holds.
	Positive TreeNode
}

// TerminalNode is a leaf carrying a prediction.
type TerminalNode struct {
	Prediction Prediction
}

func (*DecisionNode) isTreeNode() {}

func (*TerminalNode) isTreeNode() {}

// NumLeaves is the number of terminal nodes under n, n included.
func NumLeaves(n TreeNode) int {
	switch node := n.(type) {
	case *TerminalNode:
		return 1
	case *DecisionNode:
		return NumLeaves(node.Negative) + NumLeaves(node.Positive)
	}
	panic(fmt.Sprintf("forest: unknown node type %T", n))
}

// NumNonLeaves is the number of decision nodes under n, n included.
func NumNonLeaves(n TreeNode) int {
	switch node := n.(type) {
	case *TerminalNode:
		return 0
	case *DecisionNode:
		return 1 + NumNonLeaves(node.Negative) + NumNonLeaves(node.Positive)
	}
	panic(fmt.Sprintf("forest: unknown node type %T", n))
}

// DecisionTree owns one root node.
type DecisionTree struct {
	Root TreeNode
}

// DecisionForest is a weighted collection of decision trees plus the
// per-feature importance vector of the model. Read-only after construction.
type DecisionForest struct {
	// Trees in document order.
	Trees []*DecisionTree
	// Weights is parallel to Trees.
	Weights []float64
	// FeatureImportances is parallel to the schema's feature names.
	FeatureImportances []float64
}

// NewDecisionForest assembles a forest. Weights must parallel trees and
// featureImportances must have one entry per schema feature; a mismatch
// indicates a defect in the reader, not bad input, and panics.
func NewDecisionForest(trees []*DecisionTree, weights, featureImportances []float64, numFeatures int) *DecisionForest {
	if len(trees) != len(weights) {
		panic(fmt.Sprintf("forest: %d trees but %d weights", len(trees), len(weights)))
	}
	if len(featureImportances) != numFeatures {
		panic(fmt.Sprintf("forest: %d feature importances but %d features",
			len(featureImportances), numFeatures))
	}
	return &DecisionForest{
		Trees:              trees,
		Weights:            weights,
		FeatureImportances: featureImportances,
	}
}

// NumLeaves is the number of terminal nodes in the forest.
func (f *DecisionForest) NumLeaves() int {
	count := 0
	for _, tree := range f.Trees {
		count += NumLeaves(tree.Root)
	}
	return count
}

// NumNonLeaves is the number of decision nodes in the forest.
func (f *DecisionForest) NumNonLeaves() int {
	count := 0
	for _, tree := range f.Trees {
		count += NumNonLeaves(tree.Root)
	}
	return count
}

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

package forest

import (
	"math"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/oak-ml/decision-forests/pmml"
	"github.com/oak-ml/decision-forests/schema"
	"github.com/oak-ml/decision-forests/utils/textutil"
)

var logger = logrus.WithField("module", "forest.reader")

// ReadOptions control hardening of the reader against untrusted documents.
type ReadOptions struct {
	// MaxNodeDepth bounds the depth of any translated tree. Documents with a
	// deeper tree fail with ErrStructure. Zero means unbounded; set a bound
	// when reading documents from untrusted sources, since translation
	// recurses once per tree level.
	MaxNodeDepth int
}

// Read builds a decision forest from a parsed document. The categorical
// value encodings are derived from the document's data dictionary and
// returned alongside the forest.
//
// The load is all or nothing: on any validation failure no forest is
// returned and the error wraps one of ErrStructure, ErrReference or
// ErrFormat.
func Read(doc *pmml.Document, s *schema.InputSchema) (*DecisionForest, *schema.CategoricalValueEncodings, error) {
	return ReadWithOptions(doc, s, ReadOptions{})
}

// ReadWithOptions is Read with explicit reader options.
func ReadWithOptions(doc *pmml.Document, s *schema.InputSchema, options ReadOptions) (*DecisionForest, *schema.CategoricalValueEncodings, error) {
	encodings, err := schema.BuildCategoricalValueEncodings(&doc.DataDictionary, s)
	if err != nil {
		return nil, nil, errors.Wrap(ErrReference, err.Error())
	}
	f, err := ReadWithEncodings(doc, s, encodings, options)
	if err != nil {
		return nil, nil, err
	}
	return f, encodings, nil
}

// ReadWithEncodings builds a decision forest using encodings supplied by the
// caller instead of deriving them from the data dictionary. The encodings
// must cover every category the document's trees refer to.
func ReadWithEncodings(doc *pmml.Document, s *schema.InputSchema, encodings *schema.CategoricalValueEncodings, options ReadOptions) (*DecisionForest, error) {
	if n := doc.NumModels(); n != 1 {
		return nil, errors.Wrapf(ErrStructure, "document has %d top-level models, want exactly 1", n)
	}

	tr := &translator{schema: s, encodings: encodings, maxDepth: options.MaxNodeDepth}

	var trees []*DecisionTree
	var weights []float64
	var miningSchema *pmml.MiningSchema

	if len(doc.MiningModels) == 1 {
		model := doc.MiningModels[0]
		if err := checkFunction(model.FunctionName, s); err != nil {
			return nil, err
		}
		miningSchema = &model.MiningSchema

		segmentation := model.Segmentation
		if segmentation == nil {
			return nil, errors.Wrap(ErrStructure, "ensemble model has no segmentation")
		}
		switch segmentation.MultipleModelMethod {
		case pmml.MethodWeightedAverage, pmml.MethodWeightedMajorityVote:
		default:
			return nil, errors.Wrapf(ErrStructure, "unsupported combination method %q",
				segmentation.MultipleModelMethod)
		}
		if len(segmentation.Segments) == 0 {
			return nil, errors.Wrap(ErrStructure, "ensemble model has no segments")
		}

		trees = make([]*DecisionTree, 0, len(segmentation.Segments))
		weights = make([]float64, 0, len(segmentation.Segments))
		for i, segment := range segmentation.Segments {
			if segment.True == nil || segment.Predicate != nil {
				return nil, errors.Wrapf(ErrStructure,
					"segment %d is not gated by the trivial true predicate", i)
			}
			if segment.Weight < 0 {
				return nil, errors.Wrapf(ErrStructure,
					"segment %d has negative weight %v", i, segment.Weight)
			}
			if segment.TreeModel == nil {
				return nil, errors.Wrapf(ErrStructure, "segment %d has no tree model", i)
			}
			root, err := tr.translate(segment.TreeModel.Node, 0)
			if err != nil {
				return nil, err
			}
			trees = append(trees, &DecisionTree{Root: root})
			weights = append(weights, segment.Weight)
			logger.WithFields(logrus.Fields{
				"segment": i,
				"weight":  segment.Weight,
				"leaves":  NumLeaves(root),
			}).Debug("translated ensemble segment")
		}
	} else {
		model := doc.TreeModels[0]
		if err := checkFunction(model.FunctionName, s); err != nil {
			return nil, err
		}
		miningSchema = &model.MiningSchema

		root, err := tr.translate(model.Node, 0)
		if err != nil {
			return nil, err
		}
		trees = []*DecisionTree{{Root: root}}
		weights = []float64{1.0}
	}

	importances, err := assembleImportances(miningSchema.MiningFields, s)
	if err != nil {
		return nil, err
	}

	f := NewDecisionForest(trees, weights, importances, s.NumFeatures())
	logger.WithFields(logrus.Fields{
		"trees":    len(f.Trees),
		"leaves":   f.NumLeaves(),
		"features": s.NumFeatures(),
	}).Info("decision forest loaded")
	return f, nil
}

// checkFunction validates the model's declared mining function against the
// schema's target kind.
func checkFunction(functionName string, s *schema.InputSchema) error {
	switch functionName {
	case pmml.FunctionClassification, pmml.FunctionRegression:
	default:
		return errors.Wrapf(ErrStructure, "unsupported mining function %q", functionName)
	}
	if s.IsClassification() != (functionName == pmml.FunctionClassification) {
		return errors.Wrapf(ErrStructure,
			"model function %q does not match schema target kind", functionName)
	}
	return nil
}

// assembleImportances derives the per-feature importance vector from the
// mining schema. Fields are matched strictly positionally against the
// schema's feature names.
func assembleImportances(fields []pmml.MiningField, s *schema.InputSchema) ([]float64, error) {
	if len(fields) != s.NumFeatures() {
		return nil, errors.Wrapf(ErrStructure,
			"mining schema has %d fields, schema has %d features", len(fields), s.NumFeatures())
	}
	importances := make([]float64, s.NumFeatures())
	for i, field := range fields {
		if field.Name != s.FeatureName(i) {
			return nil, errors.Wrapf(ErrReference,
				"mining field %d is %q, want %q", i, field.Name, s.FeatureName(i))
		}
		if field.Importance != nil {
			importances[i] = *field.Importance
		}
	}
	return importances, nil
}

// translator turns raw tree nodes into data-model nodes.
type translator struct {
	schema    *schema.InputSchema
	encodings *schema.CategoricalValueEncodings
	maxDepth  int
}

func (tr *translator) translate(node *pmml.Node, depth int) (TreeNode, error) {
	if node == nil {
		return nil, errors.Wrap(ErrStructure, "missing tree node")
	}
	if tr.maxDepth > 0 && depth >= tr.maxDepth {
		return nil, errors.Wrapf(ErrStructure, "tree deeper than %d levels", tr.maxDepth)
	}

	if len(node.Children) == 0 {
		return tr.terminal(node)
	}
	if len(node.Children) != 2 {
		return nil, errors.Wrapf(ErrStructure,
			"node %q has %d children, want 0 or 2", node.ID, len(node.Children))
	}

	// Exactly one child carries the trivial predicate; it is the default
	// branch. The other carries the decision.
	child1, child2 := node.Children[0], node.Children[1]
	var negative, positive *pmml.Node
	switch {
	case child1.HasTruePredicate() && child2.HasTruePredicate():
		return nil, errors.Wrapf(ErrStructure, "node %q: both children trivially true", node.ID)
	case child1.HasTruePredicate():
		negative, positive = child1, child2
	case child2.HasTruePredicate():
		negative, positive = child2, child1
	default:
		return nil, errors.Wrapf(ErrStructure, "node %q: no trivially true child", node.ID)
	}

	defaultPositive := node.DefaultChild != "" && node.DefaultChild == positive.ID
	decision, err := tr.decision(positive, defaultPositive)
	if err != nil {
		return nil, err
	}

	negativeNode, err := tr.translate(negative, depth+1)
	if err != nil {
		return nil, err
	}
	positiveNode, err := tr.translate(positive, depth+1)
	if err != nil {
		return nil, err
	}
	return &DecisionNode{Decision: decision, Negative: negativeNode, Positive: positiveNode}, nil
}

func (tr *translator) terminal(node *pmml.Node) (TreeNode, error) {
	if len(node.ScoreDistributions) > 0 {
		target := tr.schema.TargetFeatureIndex()
		encoding := tr.encodings.ValueEncodingMap(target)
		counts := make([]int, tr.encodings.CategoryCount(target))
		for _, dist := range node.ScoreDistributions {
			code, ok := encoding[dist.Value]
			if !ok {
				return nil, errors.Wrapf(ErrReference,
					"score distribution category %q not in target encoding", dist.Value)
			}
			if dist.RecordCount < 0 {
				return nil, errors.Wrapf(ErrFormat,
					"negative record count %v for category %q", dist.RecordCount, dist.Value)
			}
			// Counts may be fractional after ensemble weighting.
			counts[code] = int(math.Round(dist.RecordCount))
		}
		return &TerminalNode{Prediction: CategoricalPrediction{Counts: counts}}, nil
	}

	value, err := strconv.ParseFloat(node.Score, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "unparsable score %q on node %q", node.Score, node.ID)
	}
	if node.RecordCount < 0 {
		return nil, errors.Wrapf(ErrFormat,
			"negative record count %v on node %q", node.RecordCount, node.ID)
	}
	return &TerminalNode{Prediction: NumericPrediction{
		Value: value,
		Count: int(math.Round(node.RecordCount)),
	}}, nil
}

// decision builds the decision encoded by the positive child's predicate.
func (tr *translator) decision(positive *pmml.Node, defaultPositive bool) (Decision, error) {
	switch {
	case positive.SimplePredicate != nil:
		return tr.numericDecision(positive.SimplePredicate, defaultPositive)
	case positive.SimpleSetPredicate != nil:
		return tr.categoricalDecision(positive.SimpleSetPredicate, defaultPositive)
	}
	return nil, errors.Wrapf(ErrStructure, "node %q carries no supported predicate", positive.ID)
}

func (tr *translator) numericDecision(p *pmml.SimplePredicate, defaultPositive bool) (Decision, error) {
	switch p.Operator {
	case pmml.OperatorGreaterOrEqual, pmml.OperatorGreaterThan:
	default:
		return nil, errors.Wrapf(ErrStructure, "unsupported operator %q", p.Operator)
	}
	threshold, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "unparsable threshold %q", p.Value)
	}
	// The decision rule is uniformly "feature >= threshold". A strict
	// "greater than" becomes ">=" against the next float above the value.
	if p.Operator == pmml.OperatorGreaterThan {
		threshold = math.Nextafter(threshold, math.Inf(1))
	}
	feature, ok := tr.schema.FeatureIndex(p.Field)
	if !ok {
		return nil, errors.Wrapf(ErrReference, "feature %q not in schema", p.Field)
	}
	return NumericDecision{
		Feature:         feature,
		Threshold:       threshold,
		MissingPositive: defaultPositive,
	}, nil
}

func (tr *translator) categoricalDecision(p *pmml.SimpleSetPredicate, defaultPositive bool) (Decision, error) {
	switch p.BooleanOperator {
	case pmml.OperatorIsIn, pmml.OperatorIsNotIn:
	default:
		return nil, errors.Wrapf(ErrStructure, "unsupported set operator %q", p.BooleanOperator)
	}
	feature, ok := tr.schema.FeatureIndex(p.Field)
	if !ok {
		return nil, errors.Wrapf(ErrReference, "feature %q not in schema", p.Field)
	}
	encoding := tr.encodings.ValueEncodingMap(feature)
	if encoding == nil {
		return nil, errors.Wrapf(ErrReference, "feature %q has no categorical encoding", p.Field)
	}

	categories, err := textutil.ParseDelimited(strings.TrimSpace(p.Array.Value), ' ')
	if err != nil {
		return nil, errors.Wrapf(ErrFormat, "unparsable category array %q", p.Array.Value)
	}

	active := NewCategorySet(tr.encodings.CategoryCount(feature))
	if p.BooleanOperator == pmml.OperatorIsNotIn {
		active.Fill()
	}
	for _, category := range categories {
		code, ok := encoding[category]
		if !ok {
			return nil, errors.Wrapf(ErrReference,
				"category %q not in encoding of feature %q", category, p.Field)
		}
		if p.BooleanOperator == pmml.OperatorIsIn {
			active.Set(code)
		} else {
			active.Clear(code)
		}
	}
	return CategoricalDecision{
		Feature:          feature,
		ActiveCategories: active,
		MissingPositive:  defaultPositive,
	}, nil
}

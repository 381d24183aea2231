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
	"encoding/xml"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/oak-ml/decision-forests/pmml"
)

// End-to-end: a document decoded from serialized form by the upstream
// parser, translated into a forest, compared structurally.
const ensembleXML = `<PMML version="4.2">
  <DataDictionary>
    <DataField name="color" optype="categorical" dataType="string">
      <Value value="red"/>
      <Value value="green"/>
      <Value value="blue"/>
    </DataField>
    <DataField name="size" optype="continuous" dataType="double"/>
    <DataField name="label" optype="categorical" dataType="string">
      <Value value="yes"/>
      <Value value="no"/>
      <Value value="maybe"/>
    </DataField>
  </DataDictionary>
  <MiningModel functionName="classification">
    <MiningSchema>
      <MiningField name="color" importance="0.1"/>
      <MiningField name="size" importance="0.9"/>
      <MiningField name="label" usageType="predicted"/>
    </MiningSchema>
    <Segmentation multipleModelMethod="weightedAverage">
      <Segment id="1" weight="0.6">
        <True/>
        <TreeModel functionName="classification">
          <Node id="r" defaultChild="n2">
            <True/>
            <Node id="n1">
              <True/>
              <ScoreDistribution value="yes" recordCount="10"/>
              <ScoreDistribution value="no" recordCount="2"/>
            </Node>
            <Node id="n2">
              <SimplePredicate field="size" operator="greaterThan" value="2.5"/>
              <ScoreDistribution value="no" recordCount="8"/>
            </Node>
          </Node>
        </TreeModel>
      </Segment>
      <Segment id="2" weight="0.4">
        <True/>
        <TreeModel functionName="classification">
          <Node id="r2">
            <True/>
            <Node id="a">
              <True/>
              <ScoreDistribution value="maybe" recordCount="4"/>
            </Node>
            <Node id="b">
              <SimpleSetPredicate field="color" booleanOperator="isNotIn">
                <Array n="2" type="string">red blue</Array>
              </SimpleSetPredicate>
              <ScoreDistribution value="yes" recordCount="6"/>
            </Node>
          </Node>
        </TreeModel>
      </Segment>
    </Segmentation>
  </MiningModel>
</PMML>`

func TestReadFromXML(t *testing.T) {
	var doc pmml.Document
	require.NoError(t, xml.Unmarshal([]byte(ensembleXML), &doc))

	f, encodings, err := Read(&doc, classificationSchema(t))
	require.NoError(t, err)
	require.Equal(t, 3, encodings.CategoryCount(2))

	greenOnly := NewCategorySet(3)
	greenOnly.Set(1)
	want := &DecisionForest{
		Trees: []*DecisionTree{
			{Root: &DecisionNode{
				Decision: NumericDecision{
					Feature:         1,
					Threshold:       math.Nextafter(2.5, math.Inf(1)),
					MissingPositive: true,
				},
				Negative: &TerminalNode{Prediction: CategoricalPrediction{Counts: []int{10, 2, 0}}},
				Positive: &TerminalNode{Prediction: CategoricalPrediction{Counts: []int{0, 8, 0}}},
			}},
			{Root: &DecisionNode{
				Decision: CategoricalDecision{
					Feature:          0,
					ActiveCategories: greenOnly,
					MissingPositive:  false,
				},
				Negative: &TerminalNode{Prediction: CategoricalPrediction{Counts: []int{0, 0, 4}}},
				Positive: &TerminalNode{Prediction: CategoricalPrediction{Counts: []int{6, 0, 0}}},
			}},
		},
		Weights:            []float64{0.6, 0.4},
		FeatureImportances: []float64{0.1, 0.9, 0},
	}

	if diff := cmp.Diff(want, f, cmp.AllowUnexported(CategorySet{})); diff != "" {
		t.Errorf("forest mismatch (-want +got):\n%s", diff)
	}
}

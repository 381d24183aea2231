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

// Package pmml defines the object graph of the subset of the PMML
// interchange format consumed by the forest reader: a data dictionary, one
// tree model or one segmented ensemble of tree models, and the node /
// predicate structure inside each tree.
//
// The structs carry xml tags so that a generic decoder such as encoding/xml
// can populate them. Decoding itself happens upstream of this module; the
// reader only ever sees the populated graph.
package pmml

import "encoding/xml"

// Mining function kinds.
const (
	FunctionClassification = "classification"
	FunctionRegression     = "regression"
)

// Ensemble combination methods.
const (
	MethodWeightedAverage      = "weightedAverage"
	MethodWeightedMajorityVote = "weightedMajorityVote"
)

// Relational predicate operators.
const (
	OperatorGreaterThan    = "greaterThan"
	OperatorGreaterOrEqual = "greaterOrEqual"
	OperatorLessThan       = "lessThan"
	OperatorLessOrEqual    = "lessOrEqual"
	OperatorEqual          = "equal"
	OperatorNotEqual       = "notEqual"
)

// Set predicate operators.
const (
	OperatorIsIn    = "isIn"
	OperatorIsNotIn = "isNotIn"
)

// Document is the root of a parsed PMML document.
type Document struct {
	XMLName        xml.Name       `xml:"PMML"`
	Version        string         `xml:"version,attr"`
	DataDictionary DataDictionary `xml:"DataDictionary"`
	TreeModels     []*TreeModel   `xml:"TreeModel"`
	MiningModels   []*MiningModel `xml:"MiningModel"`
}

// NumModels is the number of top-level models in the document.
func (d *Document) NumModels() int {
	return len(d.TreeModels) + len(d.MiningModels)
}

// DataDictionary declares the fields of the model and, for categorical
// fields, their full value domains.
type DataDictionary struct {
	DataFields []DataField `xml:"DataField"`
}

// Field looks up a data field by name. Returns nil if not declared.
func (d *DataDictionary) Field(name string) *DataField {
	for i := range d.DataFields {
		if d.DataFields[i].Name == name {
			return &d.DataFields[i]
		}
	}
	return nil
}

// DataField is one declared field.
type DataField struct {
	Name     string  `xml:"name,attr"`
	OpType   string  `xml:"optype,attr"`
	DataType string  `xml:"dataType,attr"`
	Values   []Value `xml:"Value"`
}

// Value is one declared categorical value of a data field. Declaration order
// is significant: it defines the value's integer encoding.
type Value struct {
	Value string `xml:"value,attr"`
}

// MiningSchema lists the fields a model consumes, in order.
type MiningSchema struct {
	MiningFields []MiningField `xml:"MiningField"`
}

// MiningField is one entry of a mining schema. Importance is optional in the
// format, hence the pointer.
type MiningField struct {
	Name       string   `xml:"name,attr"`
	UsageType  string   `xml:"usageType,attr"`
	Importance *float64 `xml:"importance,attr"`
}

// TreeModel is a single decision tree model.
type TreeModel struct {
	FunctionName string       `xml:"functionName,attr"`
	MiningSchema MiningSchema `xml:"MiningSchema"`
	Node         *Node        `xml:"Node"`
}

// MiningModel is an ensemble wrapper around sub-models.
type MiningModel struct {
	FunctionName string        `xml:"functionName,attr"`
	MiningSchema MiningSchema  `xml:"MiningSchema"`
	Segmentation *Segmentation `xml:"Segmentation"`
}

// Segmentation combines the outputs of an ordered list of segments.
type Segmentation struct {
	MultipleModelMethod string     `xml:"multipleModelMethod,attr"`
	Segments            []*Segment `xml:"Segment"`
}

// Segment pairs a gating predicate and a weight with one sub-model.
type Segment struct {
	ID        string      `xml:"id,attr"`
	Weight    float64     `xml:"weight,attr"`
	True      *True       `xml:"True"`
	TreeModel *TreeModel  `xml:"TreeModel"`
	Predicate *RawElement `xml:",any"`
}

// True is the trivial always-true predicate.
type True struct{}

// RawElement captures a predicate element the reader does not model. Its
// presence alone is meaningful: segments gated by anything but True are
// rejected.
type RawElement struct {
	XMLName xml.Name
}

// Node is one node of a tree model: a gating predicate, zero or two child
// nodes, and a terminal payload (scalar score or score distribution).
type Node struct {
	ID                 string              `xml:"id,attr"`
	Score              string              `xml:"score,attr"`
	RecordCount        float64             `xml:"recordCount,attr"`
	DefaultChild       string              `xml:"defaultChild,attr"`
	True               *True               `xml:"True"`
	SimplePredicate    *SimplePredicate    `xml:"SimplePredicate"`
	SimpleSetPredicate *SimpleSetPredicate `xml:"SimpleSetPredicate"`
	ScoreDistributions []ScoreDistribution `xml:"ScoreDistribution"`
	Children           []*Node             `xml:"Node"`
}

// HasTruePredicate tests whether the node is gated by the trivial predicate.
func (n *Node) HasTruePredicate() bool {
	return n.True != nil
}

// SimplePredicate is a relational comparison of one field against a constant.
type SimplePredicate struct {
	Field    string `xml:"field,attr"`
	Operator string `xml:"operator,attr"`
	Value    string `xml:"value,attr"`
}

// SimpleSetPredicate tests one field for membership in a value set.
type SimpleSetPredicate struct {
	Field           string `xml:"field,attr"`
	BooleanOperator string `xml:"booleanOperator,attr"`
	Array           Array  `xml:"Array"`
}

// Array is a PMML array literal. Elements are space delimited; elements
// containing spaces are double quoted.
type Array struct {
	N     int    `xml:"n,attr"`
	Type  string `xml:"type,attr"`
	Value string `xml:",chardata"`
}

// ScoreDistribution is one (category, record count) pair of a terminal node.
type ScoreDistribution struct {
	Value       string  `xml:"value,attr"`
	RecordCount float64 `xml:"recordCount,attr"`
}

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

// Package textutil parses and joins delimited text with CSV quoting rules
// and a configurable delimiter. PMML array literals are space delimited with
// double quotes around elements that contain spaces.
package textutil

import (
	"encoding/csv"
	"strings"
)

// ParseDelimited splits one line into fields on the given delimiter.
// Double-quoted fields may contain the delimiter.
func ParseDelimited(line string, delimiter rune) ([]string, error) {
	if line == "" {
		return []string{""}, nil
	}
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = delimiter
	r.FieldsPerRecord = -1
	return r.Read()
}

// ParseCSV splits one comma-delimited line into fields.
func ParseCSV(line string) ([]string, error) {
	return ParseDelimited(line, ',')
}

// JoinDelimited joins fields with the given delimiter, quoting fields that
// contain the delimiter or a quote.
func JoinDelimited(fields []string, delimiter rune) string {
	var sb strings.Builder
	w := csv.NewWriter(&sb)
	w.Comma = delimiter
	// Write on a strings.Builder cannot fail.
	_ = w.Write(fields)
	w.Flush()
	return strings.TrimSuffix(sb.String(), "\n")
}

// JoinCSV joins fields with commas.
func JoinCSV(fields []string) string {
	return JoinDelimited(fields, ',')
}

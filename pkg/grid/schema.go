// Copyright 2023-2024 daviszhen
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package grid

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/daviszhen/gridsort/pkg/sorting"
)

var (
	ErrInvalidSchema = errors.New("grid: invalid schema")
	ErrUnknownColumn = errors.New("grid: unknown column")
)

// ColumnSchema describes one grid column.
type ColumnSchema struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type,omitempty"`
	DateFormat string `yaml:"dateFormat,omitempty"`
	Locale     string `yaml:"locale,omitempty"`
	// SortEmptyCells overrides Options.SortEmptyCells when set.
	SortEmptyCells *bool `yaml:"sortEmptyCells,omitempty"`
	// CompareWith names a registered data type whose factory is used for this
	// column regardless of Type.
	CompareWith string `yaml:"compareWith,omitempty"`
}

type SortSpec struct {
	Column string            `yaml:"column"`
	Order  sorting.SortOrder `yaml:"order,omitempty"`
}

func (spec SortSpec) String() string {
	return fmt.Sprintf("%s:%s", spec.Column, spec.Order)
}

// Schema is the column layout of a grid plus its default sort.
type Schema struct {
	Columns []ColumnSchema `yaml:"columns"`
	Sort    []SortSpec     `yaml:"sort,omitempty"`
}

func LoadSchema(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	schema, err := ParseSchema(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return schema, nil
}

// ParseSchema decodes and validates a yaml schema. Missing sort orders
// default to asc.
func ParseSchema(data []byte) (*Schema, error) {
	var schema Schema
	if err := yaml.Unmarshal(data, &schema); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSchema, err)
	}
	for i := range schema.Sort {
		if schema.Sort[i].Order == "" {
			schema.Sort[i].Order = sorting.Asc
		}
	}
	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return &schema, nil
}

func (schema *Schema) Validate() error {
	seen := make(map[string]struct{}, len(schema.Columns))
	for i, col := range schema.Columns {
		if col.Name == "" {
			return fmt.Errorf("%w: column %d has no name", ErrInvalidSchema, i)
		}
		if _, has := seen[col.Name]; has {
			return fmt.Errorf("%w: duplicate column %q", ErrInvalidSchema, col.Name)
		}
		seen[col.Name] = struct{}{}
	}
	for _, spec := range schema.Sort {
		if _, has := seen[spec.Column]; !has {
			return fmt.Errorf("%w: sort on %q: %w", ErrInvalidSchema, spec.Column, ErrUnknownColumn)
		}
		if !spec.Order.Valid() {
			return fmt.Errorf("%w: sort on %q: %w", ErrInvalidSchema, spec.Column, sorting.ErrInvalidSortOrder)
		}
	}
	return nil
}

// Column returns the schema of the named column.
func (schema *Schema) Column(name string) (*ColumnSchema, bool) {
	if schema == nil {
		return nil, false
	}
	for i := range schema.Columns {
		if schema.Columns[i].Name == name {
			return &schema.Columns[i], true
		}
	}
	return nil, false
}

// ParseSortSpecs parses name[:asc|desc] arguments. A suffix that is not a
// sort order is part of the column name.
func ParseSortSpecs(args []string) ([]SortSpec, error) {
	specs := make([]SortSpec, 0, len(args))
	for _, arg := range args {
		spec := SortSpec{Column: arg, Order: sorting.Asc}
		if pos := strings.LastIndex(arg, ":"); pos >= 0 {
			if order, err := sorting.ParseSortOrder(arg[pos+1:]); err == nil {
				spec.Column = arg[:pos]
				spec.Order = order
			}
		}
		if spec.Column == "" {
			return nil, fmt.Errorf("%w: empty column in %q", ErrUnknownColumn, arg)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

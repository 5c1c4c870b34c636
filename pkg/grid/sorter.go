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
	"fmt"

	"go.uber.org/zap"

	"github.com/daviszhen/gridsort/pkg/sorting"
	"github.com/daviszhen/gridsort/pkg/util"
)

// Options are grid wide defaults for columns that do not set their own.
type Options struct {
	Locale         string
	DateFormat     string
	SortEmptyCells bool
}

func OptionsFromConfig(conf *util.Config) Options {
	if conf == nil {
		return Options{}
	}
	return Options{
		Locale:         conf.Sort.Locale,
		DateFormat:     conf.Sort.DateFormat,
		SortEmptyCells: conf.Sort.SortEmptyCells,
	}
}

// Sorter runs sort requests for tables described by a schema.
type Sorter struct {
	reg    *sorting.Registry
	schema *Schema
	opts   Options
}

// NewSorter builds a sorter. schema may be nil; every column is then sorted
// with the default comparator.
func NewSorter(reg *sorting.Registry, schema *Schema, opts Options) *Sorter {
	return &Sorter{
		reg:    reg,
		schema: schema,
		opts:   opts,
	}
}

func (s *Sorter) columnMeta(name string) *sorting.ColumnMeta {
	meta := &sorting.ColumnMeta{
		Name:       name,
		DateFormat: s.opts.DateFormat,
		Locale:     s.opts.Locale,
	}
	if col, has := s.schema.Column(name); has {
		meta.Type = col.Type
		if col.DateFormat != "" {
			meta.DateFormat = col.DateFormat
		}
		if col.Locale != "" {
			meta.Locale = col.Locale
		}
	}
	return meta
}

func (s *Sorter) columnSettings(name string) (*sorting.ColumnSettings, error) {
	settings := &sorting.ColumnSettings{
		SortEmptyCells: s.opts.SortEmptyCells,
	}
	col, has := s.schema.Column(name)
	if !has {
		return settings, nil
	}
	if col.SortEmptyCells != nil {
		settings.SortEmptyCells = *col.SortEmptyCells
	}
	if col.CompareWith != "" {
		if !s.reg.HasCompareFunctionFactory(col.CompareWith) {
			return nil, fmt.Errorf("column %q: compareWith %q is not registered", name, col.CompareWith)
		}
		factory, err := s.reg.CompareFunctionFactory(&sorting.ColumnMeta{Type: col.CompareWith}, nil)
		if err != nil {
			return nil, err
		}
		settings.CompareFunctionFactory = factory
	}
	return settings, nil
}

// Sort returns a new table with the rows of table ordered by specs, or by the
// schema's default sort when specs is empty. table is not modified.
func (s *Sorter) Sort(table *Table, specs []SortSpec) (*Table, error) {
	if len(specs) == 0 && s.schema != nil {
		specs = s.schema.Sort
	}
	out := &Table{
		Header: table.Header,
		Rows:   make([][]string, 0, len(table.Rows)),
	}
	if len(specs) == 0 {
		out.Rows = append(out.Rows, table.Rows...)
		return out, nil
	}

	configs := make([]sorting.ColumnSortConfig, 0, len(specs))
	metas := make(map[int]*sorting.ColumnMeta, len(specs))
	settings := make(map[int]*sorting.ColumnSettings, len(specs))
	for _, spec := range specs {
		pos, has := table.ColumnIndex(spec.Column)
		if !has {
			return nil, fmt.Errorf("sort on %q: %w", spec.Column, ErrUnknownColumn)
		}
		order := spec.Order
		if order == "" {
			order = sorting.Asc
		}
		configs = append(configs, sorting.ColumnSortConfig{Column: pos, SortOrder: order})
		if _, has := metas[pos]; has {
			continue
		}
		set, err := s.columnSettings(spec.Column)
		if err != nil {
			return nil, err
		}
		metas[pos] = s.columnMeta(spec.Column)
		settings[pos] = set
	}

	columns, err := s.reg.Bind(configs,
		func(column int) *sorting.ColumnMeta { return metas[column] },
		func(column int) *sorting.ColumnSettings { return settings[column] },
	)
	if err != nil {
		return nil, err
	}
	util.Debug("sort table",
		zap.Int("rows", len(table.Rows)),
		zap.Stringers("specs", specs),
		zap.Int("boundColumns", len(columns)))

	//a custom main comparator may leave distinct rows equal
	idx := sorting.NewIndex(sorting.StableComparator(s.reg.RowComparator(columns)))
	for i := range table.Rows {
		values := make([]any, len(columns))
		for j, column := range columns {
			values[j] = table.Cell(i, column.Config.Column)
		}
		idx.Insert(sorting.Row{Index: i, Values: values})
	}
	idx.Ascend(func(row sorting.Row) bool {
		out.Rows = append(out.Rows, table.Rows[row.Index])
		return true
	})
	return out, nil
}

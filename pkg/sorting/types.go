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

package sorting

import (
	"fmt"
	"strings"
)

type Ordering int

const (
	FirstBeforeSecond Ordering = -1
	DoNotSwap         Ordering = 0
	FirstAfterSecond  Ordering = 1
)

// Reverse flips the ordering for descending sorts.
func (o Ordering) Reverse() Ordering {
	return -o
}

func (o Ordering) String() string {
	switch o {
	case FirstBeforeSecond:
		return "FIRST_BEFORE_SECOND"
	case DoNotSwap:
		return "DO_NOT_SWAP"
	case FirstAfterSecond:
		return "FIRST_AFTER_SECOND"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

func (so SortOrder) Valid() bool {
	return so == Asc || so == Desc
}

// ParseSortOrder accepts asc/desc in any case.
func ParseSortOrder(s string) (SortOrder, error) {
	so := SortOrder(strings.ToLower(strings.TrimSpace(s)))
	if !so.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, s)
	}
	return so, nil
}

// Data type identifiers of the built-in factories.
const (
	NumericDataType = "numeric"
	DateDataType    = "date"
	DefaultDataType = "default"
)

// ColumnMeta is the column metadata owned by the grid. Type selects the
// compare function factory.
type ColumnMeta struct {
	Name string
	Type string
	// DateFormat is a Go time layout used by the date comparator.
	DateFormat string
	// Locale is a BCP 47 tag used to collate text in the default comparator.
	Locale string
}

// ColumnSettings holds the sorting settings of a single column.
type ColumnSettings struct {
	// CompareFunctionFactory, when set, wins over the registry.
	CompareFunctionFactory CompareFunctionFactory
	// SortEmptyCells sorts empty cells like the smallest values instead of
	// always putting them last.
	SortEmptyCells bool
}

// CompareFunction orders two cell values.
type CompareFunction func(a, b any) Ordering

// CompareFunctionFactory builds a CompareFunction for one column.
type CompareFunctionFactory func(order SortOrder, meta *ColumnMeta, settings *ColumnSettings) CompareFunction

type ColumnSortConfig struct {
	Column    int
	SortOrder SortOrder
}

func (c ColumnSortConfig) String() string {
	return fmt.Sprintf("%d:%s", c.Column, c.SortOrder)
}

// SortConfigNormalizer adjusts a sort request before comparators are built.
// It may return a new slice or modify the one it gets.
type SortConfigNormalizer func(configs []ColumnSortConfig) []ColumnSortConfig

// Row is a row position with the values of the sorted columns, in the same
// order as the SortColumns the comparator was built from.
type Row struct {
	Index  int
	Values []any
}

// SortColumn is a column sort config bound to its comparator.
type SortColumn struct {
	Config   ColumnSortConfig
	Meta     *ColumnMeta
	Settings *ColumnSettings
	Compare  CompareFunction
}

type RowComparator func(a, b Row) Ordering

// MainSortComparator builds the comparator used for whole rows.
type MainSortComparator func(columns []SortColumn) RowComparator

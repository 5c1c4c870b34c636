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

// MultiColumnComparator compares rows column by column. The first column that
// orders the rows decides; rows equal on every column keep their original
// order.
func MultiColumnComparator(columns []SortColumn) RowComparator {
	return func(a, b Row) Ordering {
		for i, column := range columns {
			if i >= len(a.Values) || i >= len(b.Values) {
				break
			}
			if res := column.Compare(a.Values[i], b.Values[i]); res != DoNotSwap {
				return res
			}
		}
		return compareIndex(a, b)
	}
}

// StableComparator orders rows that cmp considers equal by their original
// position.
func StableComparator(cmp RowComparator) RowComparator {
	return func(a, b Row) Ordering {
		if res := cmp(a, b); res != DoNotSwap {
			return res
		}
		return compareIndex(a, b)
	}
}

func compareIndex(a, b Row) Ordering {
	switch {
	case a.Index < b.Index:
		return FirstBeforeSecond
	case a.Index > b.Index:
		return FirstAfterSecond
	default:
		return DoNotSwap
	}
}

// SingleColumnNormalizer keeps the first config only.
func SingleColumnNormalizer(configs []ColumnSortConfig) []ColumnSortConfig {
	if len(configs) > 1 {
		return configs[:1]
	}
	return configs
}

// DedupeNormalizer drops configs for columns that already appeared. The
// input slice is left untouched.
func DedupeNormalizer(configs []ColumnSortConfig) []ColumnSortConfig {
	seen := make(map[int]struct{}, len(configs))
	res := make([]ColumnSortConfig, 0, len(configs))
	for _, config := range configs {
		if _, has := seen[config.Column]; has {
			continue
		}
		seen[config.Column] = struct{}{}
		res = append(res, config)
	}
	return res
}

package sorting

import (
	"github.com/daviszhen/gridsort/pkg/common"
)

// NumericCompareFunctionFactory compares cells as decimals. Cells that are
// not numbers go after numbers in both directions; with SortEmptyCells, empty
// cells sort like the smallest value instead.
func NumericCompareFunctionFactory(order SortOrder, meta *ColumnMeta, settings *ColumnSettings) CompareFunction {
	sortEmptyCells := settings != nil && settings.SortEmptyCells
	return func(value, nextValue any) Ordering {
		first, firstOk := common.ParseNumber(value)
		second, secondOk := common.ParseNumber(nextValue)

		if !firstOk && !secondOk {
			if sortEmptyCells {
				//an empty cell still moves ahead of text
				if ord, handled := compareEmpty(order, settings, value, nextValue); handled {
					return ord
				}
			}
			return DoNotSwap
		}
		if firstOk && secondOk && first.Compare(second) == 0 {
			return DoNotSwap
		}

		if sortEmptyCells {
			if isEmpty(value) {
				return byOrder(order, FirstBeforeSecond)
			}
			if isEmpty(nextValue) {
				return byOrder(order, FirstAfterSecond)
			}
		}

		if !firstOk {
			return FirstAfterSecond
		}
		if !secondOk {
			return FirstBeforeSecond
		}
		return fromCompare(order, first.Compare(second))
	}
}

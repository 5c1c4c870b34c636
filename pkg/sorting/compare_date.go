package sorting

import (
	"github.com/daviszhen/gridsort/pkg/common"
)

// DateCompareFunctionFactory compares cells as dates parsed with
// meta.DateFormat. Invalid dates go after valid ones in both directions.
func DateCompareFunctionFactory(order SortOrder, meta *ColumnMeta, settings *ColumnSettings) CompareFunction {
	layout := common.DefaultDateLayout
	if meta != nil && meta.DateFormat != "" {
		layout = meta.DateFormat
	}
	return func(value, nextValue any) Ordering {
		if ord, handled := compareEmpty(order, settings, value, nextValue); handled {
			return ord
		}

		first, firstOk := common.ParseTime(value, layout)
		second, secondOk := common.ParseTime(nextValue, layout)
		switch {
		case !firstOk && !secondOk:
			return DoNotSwap
		case !firstOk:
			return FirstAfterSecond
		case !secondOk:
			return FirstBeforeSecond
		}
		return fromCompare(order, first.Compare(second))
	}
}

package sorting

// isEmpty reports cells that hold no value.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	default:
		return false
	}
}

// compareEmpty handles the cases where at least one side is empty. The second
// result is false when neither side is empty.
func compareEmpty(order SortOrder, settings *ColumnSettings, value, nextValue any) (Ordering, bool) {
	sortEmptyCells := settings != nil && settings.SortEmptyCells
	if isEmpty(value) {
		if isEmpty(nextValue) {
			return DoNotSwap, true
		}
		if sortEmptyCells {
			return byOrder(order, FirstBeforeSecond), true
		}
		return FirstAfterSecond, true
	}
	if isEmpty(nextValue) {
		if sortEmptyCells {
			return byOrder(order, FirstAfterSecond), true
		}
		return FirstBeforeSecond, true
	}
	return DoNotSwap, false
}

// byOrder returns asc as is and reversed for desc.
func byOrder(order SortOrder, asc Ordering) Ordering {
	if order == Desc {
		return asc.Reverse()
	}
	return asc
}

func fromCompare(order SortOrder, cmp int) Ordering {
	switch {
	case cmp < 0:
		return byOrder(order, FirstBeforeSecond)
	case cmp > 0:
		return byOrder(order, FirstAfterSecond)
	default:
		return DoNotSwap
	}
}

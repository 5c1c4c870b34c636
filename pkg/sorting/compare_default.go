package sorting

import (
	"fmt"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/daviszhen/gridsort/pkg/common"
	"github.com/daviszhen/gridsort/pkg/util"
)

// DefaultCompareFunctionFactory is used for columns without a registered
// type. Numbers sort before text; text is collated case-insensitively for
// meta.Locale.
func DefaultCompareFunctionFactory(order SortOrder, meta *ColumnMeta, settings *ColumnSettings) CompareFunction {
	locale := ""
	if meta != nil {
		locale = meta.Locale
	}
	col := newCollator(locale)
	return func(value, nextValue any) Ordering {
		if ord, handled := compareEmpty(order, settings, value, nextValue); handled {
			return ord
		}

		first, firstOk := common.ParseNumber(value)
		second, secondOk := common.ParseNumber(nextValue)
		switch {
		case firstOk && secondOk:
			return fromCompare(order, first.Compare(second))
		case firstOk:
			return byOrder(order, FirstBeforeSecond)
		case secondOk:
			return byOrder(order, FirstAfterSecond)
		}
		return fromCompare(order, col.compare(textOf(value), textOf(nextValue)))
	}
}

// collator serializes access to a collate.Collator, which keeps internal
// buffers.
type collator struct {
	mu sync.Mutex
	c  *collate.Collator
}

func newCollator(locale string) *collator {
	tag := language.Und
	if locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			util.Warn("unknown locale, falling back to root collation",
				zap.String("locale", locale),
				zap.Error(err))
		} else {
			tag = parsed
		}
	}
	return &collator{
		c: collate.New(tag, collate.IgnoreCase),
	}
}

func (c *collator) compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

func textOf(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

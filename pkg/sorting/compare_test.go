package sorting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/daviszhen/gridsort/pkg/common"
)

type compareCase struct {
	a, b   any
	wanted Ordering
}

func runCompareCases(t *testing.T, name string, fn CompareFunction, tests []compareCase) {
	for _, tt := range tests {
		assert.Equal(t, tt.wanted, fn(tt.a, tt.b), "%s: compare(%#v, %#v)", name, tt.a, tt.b)
	}
}

func TestNumericCompare(t *testing.T) {
	meta := &ColumnMeta{Type: NumericDataType}
	plain := &ColumnSettings{}
	withEmpty := &ColumnSettings{SortEmptyCells: true}

	runCompareCases(t, "asc", NumericCompareFunctionFactory(Asc, meta, plain), []compareCase{
		{1, 2, FirstBeforeSecond},
		{2, 1, FirstAfterSecond},
		{"10", "9", FirstAfterSecond},
		{"1.0", 1, DoNotSwap},
		{-3.5, "-3.4", FirstBeforeSecond},
		{"abc", 1, FirstAfterSecond},
		{1, "abc", FirstBeforeSecond},
		{"abc", "xyz", DoNotSwap},
		{"", 1, FirstAfterSecond},
		{1, nil, FirstBeforeSecond},
		{nil, "", DoNotSwap},
		{"", "abc", DoNotSwap},
	})
	runCompareCases(t, "desc", NumericCompareFunctionFactory(Desc, meta, plain), []compareCase{
		{1, 2, FirstAfterSecond},
		{2, 1, FirstBeforeSecond},
		{"abc", 1, FirstAfterSecond},
		{1, "", FirstBeforeSecond},
		{"", 1, FirstAfterSecond},
	})
	runCompareCases(t, "asc empty", NumericCompareFunctionFactory(Asc, meta, withEmpty), []compareCase{
		{"", 1, FirstBeforeSecond},
		{1, "", FirstAfterSecond},
		{"", "abc", FirstBeforeSecond},
		{"abc", "", FirstAfterSecond},
		{"", nil, DoNotSwap},
		{"abc", 1, FirstAfterSecond},
		{1, 2, FirstBeforeSecond},
	})
	runCompareCases(t, "desc empty", NumericCompareFunctionFactory(Desc, meta, withEmpty), []compareCase{
		{"", 1, FirstAfterSecond},
		{1, "", FirstBeforeSecond},
		{1, 2, FirstAfterSecond},
	})
}

func TestNumericCompare_large(t *testing.T) {
	meta := &ColumnMeta{Type: NumericDataType}
	plain := &ColumnSettings{}

	runCompareCases(t, "asc", NumericCompareFunctionFactory(Asc, meta, plain), []compareCase{
		{1e20, 2e20, FirstBeforeSecond},
		{2e20, 1e20, FirstAfterSecond},
		{"1e25", "5", FirstAfterSecond},
		{"5", "1e25", FirstBeforeSecond},
		{"100000000000000000000", "99999999999999999999999", FirstBeforeSecond},
		{"100000000000000000000", 1e20, DoNotSwap},
		{"1e25", "abc", FirstBeforeSecond},
	})
	runCompareCases(t, "desc", NumericCompareFunctionFactory(Desc, meta, plain), []compareCase{
		{"100000000000000000000", "5", FirstBeforeSecond},
		{"5", "100000000000000000000", FirstAfterSecond},
		{1e20, 2e20, FirstAfterSecond},
		{"abc", "1e25", FirstAfterSecond},
	})
	runCompareCases(t, "default", DefaultCompareFunctionFactory(Asc, &ColumnMeta{}, plain), []compareCase{
		{"100000000000000000000", "5", FirstAfterSecond},
		{"1e25", "abc", FirstBeforeSecond},
		{1e20, 2e20, FirstBeforeSecond},
	})
}

func TestDateCompare(t *testing.T) {
	plain := &ColumnSettings{}
	withEmpty := &ColumnSettings{SortEmptyCells: true}
	meta := &ColumnMeta{Type: DateDataType}

	runCompareCases(t, "asc", DateCompareFunctionFactory(Asc, meta, plain), []compareCase{
		{"01/02/2024", "02/01/2024", FirstAfterSecond},
		{"02/01/2024", "01/02/2024", FirstBeforeSecond},
		{"02/01/2024", "02/01/2024", DoNotSwap},
		{"bad", "01/01/2024", FirstAfterSecond},
		{"01/01/2024", "bad", FirstBeforeSecond},
		{"bad", "worse", DoNotSwap},
		{"", "01/01/2024", FirstAfterSecond},
		{"01/01/2024", nil, FirstBeforeSecond},
		{"", nil, DoNotSwap},
		{time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), common.Date{Year: 2021, Month: 1, Day: 1}, FirstBeforeSecond},
	})
	runCompareCases(t, "desc", DateCompareFunctionFactory(Desc, meta, plain), []compareCase{
		{"01/02/2024", "02/01/2024", FirstBeforeSecond},
		{"bad", "01/01/2024", FirstAfterSecond},
		{"", "01/01/2024", FirstAfterSecond},
	})
	runCompareCases(t, "asc empty", DateCompareFunctionFactory(Asc, meta, withEmpty), []compareCase{
		{"", "01/01/2024", FirstBeforeSecond},
		{"01/01/2024", "", FirstAfterSecond},
	})
	runCompareCases(t, "desc empty", DateCompareFunctionFactory(Desc, meta, withEmpty), []compareCase{
		{"", "01/01/2024", FirstAfterSecond},
		{"01/01/2024", "", FirstBeforeSecond},
	})

	iso := &ColumnMeta{Type: DateDataType, DateFormat: time.DateOnly}
	runCompareCases(t, "layout", DateCompareFunctionFactory(Asc, iso, plain), []compareCase{
		{"2024-01-02", "2023-12-31", FirstAfterSecond},
		{"02/01/2024", "2023-12-31", FirstAfterSecond},
	})
}

func TestDefaultCompare(t *testing.T) {
	plain := &ColumnSettings{}
	withEmpty := &ColumnSettings{SortEmptyCells: true}
	meta := &ColumnMeta{}

	runCompareCases(t, "asc", DefaultCompareFunctionFactory(Asc, meta, plain), []compareCase{
		{"apple", "Banana", FirstBeforeSecond},
		{"b", "A", FirstAfterSecond},
		{"a", "A", DoNotSwap},
		{2, 10, FirstBeforeSecond},
		{"2", "10", FirstBeforeSecond},
		{5, "abc", FirstBeforeSecond},
		{"abc", 5, FirstAfterSecond},
		{"", "a", FirstAfterSecond},
		{"a", nil, FirstBeforeSecond},
		{nil, nil, DoNotSwap},
		{true, "zzz", FirstBeforeSecond},
	})
	runCompareCases(t, "desc", DefaultCompareFunctionFactory(Desc, meta, plain), []compareCase{
		{"apple", "banana", FirstAfterSecond},
		{5, "abc", FirstAfterSecond},
		{"abc", 5, FirstBeforeSecond},
		{"", "a", FirstAfterSecond},
	})
	runCompareCases(t, "asc empty", DefaultCompareFunctionFactory(Asc, meta, withEmpty), []compareCase{
		{"", "a", FirstBeforeSecond},
		{1, "", FirstAfterSecond},
	})
}

func TestDefaultCompare_locale(t *testing.T) {
	plain := &ColumnSettings{}
	swedish := DefaultCompareFunctionFactory(Asc, &ColumnMeta{Locale: "sv"}, plain)
	german := DefaultCompareFunctionFactory(Asc, &ColumnMeta{Locale: "de"}, plain)

	assert.Equal(t, FirstAfterSecond, swedish("ä", "z"))
	assert.Equal(t, FirstBeforeSecond, german("ä", "z"))

	broken := DefaultCompareFunctionFactory(Asc, &ColumnMeta{Locale: "!!"}, plain)
	assert.Equal(t, FirstBeforeSecond, broken("a", "b"))
}

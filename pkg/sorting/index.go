package sorting

import (
	"github.com/tidwall/btree"
)

// Index keeps rows ordered by a RowComparator. Rows the comparator reports as
// DoNotSwap are the same entry; MultiColumnComparator only does that for rows
// with the same Index.
type Index struct {
	rows *btree.BTreeG[Row]
}

func NewIndex(cmp RowComparator) *Index {
	return &Index{
		rows: btree.NewBTreeG[Row](func(a, b Row) bool {
			return cmp(a, b) == FirstBeforeSecond
		}),
	}
}

// Insert adds row, replacing an equal one.
func (idx *Index) Insert(row Row) {
	idx.rows.Set(row)
}

func (idx *Index) Delete(row Row) bool {
	_, deleted := idx.rows.Delete(row)
	return deleted
}

func (idx *Index) Len() int {
	return idx.rows.Len()
}

// Ascend calls fn for each row in order until fn returns false.
func (idx *Index) Ascend(fn func(row Row) bool) {
	idx.rows.Scan(fn)
}

func (idx *Index) Rows() []Row {
	ret := make([]Row, 0, idx.rows.Len())
	idx.rows.Scan(func(row Row) bool {
		ret = append(ret, row)
		return true
	})
	return ret
}

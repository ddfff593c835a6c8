package storage

import "sort"

// DictionaryColumn owns an immutable, strictly-sorted, duplicate-free
// dictionary of values plus an attribute vector of ValueIds referencing it.
// For every row i, either av[i] == NullValueID (the row is null) or
// dictionary[av[i]-1] equals the original row's value.
//
// A DictionaryColumn is immutable after construction; there is no setter.
type DictionaryColumn[T Elem] struct {
	dictionary []T
	av         *AttributeVector
}

// NewDictionaryColumn constructs a dictionary column from an already
// sorted, deduplicated, non-null dictionary and a populated attribute
// vector. Callers (the compression engine) are responsible for the sort/
// dedup/nulls-partitioned invariants — this constructor doesn't re-validate
// them, matching the original's DictionaryColumn constructor which trusts
// its caller (ColumnCompressor) to have built a correct dictionary. It is
// exported for the compression package's use and is not meant for general
// callers to build dictionary columns by hand.
func NewDictionaryColumn[T Elem](dictionary []T, av *AttributeVector) *DictionaryColumn[T] {
	return &DictionaryColumn[T]{dictionary: dictionary, av: av}
}

func (dc *DictionaryColumn[T]) Size() int        { return dc.av.Size() }
func (dc *DictionaryColumn[T]) Type() DataType   { return dataTypeOf[T]() }
func (dc *DictionaryColumn[T]) Compressed() bool { return true }

// Dictionary returns the sorted, unique, non-null value set backing this
// column. Callers must not mutate the returned slice.
func (dc *DictionaryColumn[T]) Dictionary() []T { return dc.dictionary }

// dictionarySize reports the dictionary's entry count, used by Chunk.Snapshot.
func (dc *DictionaryColumn[T]) dictionarySize() int { return len(dc.dictionary) }

// AttributeVector returns the width-fitted ValueId array backing this
// column.
func (dc *DictionaryColumn[T]) AttributeVector() *AttributeVector { return dc.av }

// Get decodes row i back into a (value, isNull) pair.
func (dc *DictionaryColumn[T]) Get(i int) (T, bool) {
	id := dc.av.Get(i)
	if id == NullValueID {
		var zero T
		return zero, true
	}
	return dc.dictionary[id-1], false
}

// ValueIDFor returns the ValueId a literal value would occupy in this
// dictionary via binary search (the original's get_value_id / lower_bound),
// along with whether the value is actually present. A predicate evaluator
// (external to this core) uses this to translate a scan literal into a
// ValueId comparison against the attribute vector without decoding every
// row.
func (dc *DictionaryColumn[T]) ValueIDFor(value T) (id ValueId, found bool) {
	idx := lowerBound(dc.dictionary, value)
	if idx < len(dc.dictionary) && dc.dictionary[idx] == value {
		return ValueId(idx + 1), true
	}
	return ValueId(idx + 1), false
}

// ByteSize estimates the column's in-memory footprint: the dictionary
// entries plus the width-fitted attribute vector (spec.md §4.1, "the
// chosen width is observable and is used in memory-footprint reports").
func (dc *DictionaryColumn[T]) ByteSize() int {
	total := dc.av.ByteSize()
	for _, v := range dc.dictionary {
		total += elemByteSize(v)
	}
	return total
}

// lowerBound returns the index of the first element in the sorted slice
// not less than value (the same semantics as C++'s std::lower_bound, which
// the original compression engine relies on for get_value_id).
func lowerBound[T Elem](sorted []T, value T) int {
	return sort.Search(len(sorted), func(i int) bool {
		return !(sorted[i] < value)
	})
}

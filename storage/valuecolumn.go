package storage

import "github.com/RoaringBitmap/roaring/v2"

// ValueColumn is a mutable, append-only, typed sequence of values. When
// nullable it maintains a parallel null mask backed by a RoaringBitmap the
// way ByteDB's BitmapManager (backend/columnar/bitmap.go) tracks null and
// deletion positions compactly instead of a dense []bool.
//
// Once handed to the compression engine a ValueColumn must not be mutated
// further; the type itself does not enforce this (Chunk does, by only
// exposing mutation on chunks that are still mutable).
type ValueColumn[T Elem] struct {
	values   []T
	nullable bool
	nulls    *roaring.Bitmap
}

// NewValueColumn creates an empty value column of element type T.
func NewValueColumn[T Elem](nullable bool) *ValueColumn[T] {
	vc := &ValueColumn[T]{nullable: nullable}
	if nullable {
		vc.nulls = roaring.New()
	}
	return vc
}

func (vc *ValueColumn[T]) Size() int          { return len(vc.values) }
func (vc *ValueColumn[T]) Type() DataType     { return dataTypeOf[T]() }
func (vc *ValueColumn[T]) Compressed() bool   { return false }
func (vc *ValueColumn[T]) Nullable() bool     { return vc.nullable }

// Append extends the column with a non-null value. The null mask is left
// untouched at the new position — only AppendNull marks a row null.
func (vc *ValueColumn[T]) Append(v T) {
	vc.values = append(vc.values, v)
}

// AppendNull extends the column with a null row. It stores a
// default-constructed T and records the position in the null mask. Calling
// this on a non-nullable column is an invariant violation by construction —
// callers must consult Nullable() first, exactly like appending past a
// table's schema would be caller error rather than validated input.
func (vc *ValueColumn[T]) AppendNull() {
	assert(vc.nullable, "ValueColumn.AppendNull: column is not nullable")
	var zero T
	vc.values = append(vc.values, zero)
	vc.nulls.Add(uint32(len(vc.values) - 1))
}

// IsNull reports whether row i is null.
func (vc *ValueColumn[T]) IsNull(i int) bool {
	assert(i >= 0 && i < len(vc.values), "ValueColumn.IsNull: index %d out of range", i)
	if !vc.nullable {
		return false
	}
	return vc.nulls.Contains(uint32(i))
}

// Get returns the (value, isNull) pair for row i. When isNull is true the
// returned value is the default-constructed T, not meaningful data.
func (vc *ValueColumn[T]) Get(i int) (T, bool) {
	assert(i >= 0 && i < len(vc.values), "ValueColumn.Get: index %d out of range", i)
	return vc.values[i], vc.IsNull(i)
}

// Values returns the backing slice of raw values, including default values
// at null positions. Used by the compression engine as its scratch source;
// callers must not mutate the returned slice.
func (vc *ValueColumn[T]) Values() []T { return vc.values }

// NullCount returns how many rows are marked null.
func (vc *ValueColumn[T]) NullCount() int {
	if !vc.nullable {
		return 0
	}
	return int(vc.nulls.GetCardinality())
}

// ByteSize estimates the column's in-memory footprint: the value buffer
// plus, for nullable columns, the RoaringBitmap null mask's estimated
// in-memory size (GetSizeInBytes).
func (vc *ValueColumn[T]) ByteSize() int {
	total := 0
	for _, v := range vc.values {
		total += elemByteSize(v)
	}
	if vc.nullable {
		total += int(vc.nulls.GetSizeInBytes())
	}
	return total
}
